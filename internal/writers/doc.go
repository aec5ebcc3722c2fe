// Package writers turns edited stores into files.
//
// Design:
//   • Writers own output naming and serialization.
//   • The edit core stays format-agnostic; apps stay orchestration-only.
package writers
