// Package edit is the point-edit core: prefix lookup of a target sequence,
// context-tolerant site resolution and per-variant mutation. It never imports
// readers, writers, or the CLI layers; callers hand it a Store and Records.
package edit
