// Package report persists per-row edit outcomes (TSV, JSONL, SQLite).
//
// Sinks register themselves by format name; the app only calls Write.
// JSONL goes through pkg/api (v1) for a stable wire format.
package report
