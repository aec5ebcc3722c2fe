// core/fasta/writer.go
package fasta

import (
	"bufio"
	"io"
)

// DefaultWrap is the line width used when writing sequences.
const DefaultWrap = 60

// Writer serializes records as FASTA. Wrap <= 0 writes each sequence on a
// single line.
type Writer struct {
	bw   *bufio.Writer
	Wrap int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 64<<10), Wrap: DefaultWrap}
}

// Write emits ">"+Description (or ID when Description is empty) then Seq.
func (w *Writer) Write(r Record) error {
	hdr := r.Description
	if hdr == "" {
		hdr = r.ID
	}
	if err := w.bw.WriteByte('>'); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(hdr); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	seq := r.Seq
	if w.Wrap <= 0 {
		if _, err := w.bw.Write(seq); err != nil {
			return err
		}
		return w.bw.WriteByte('\n')
	}
	for len(seq) > 0 {
		n := min(w.Wrap, len(seq))
		if _, err := w.bw.Write(seq[:n]); err != nil {
			return err
		}
		if err := w.bw.WriteByte('\n'); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

// Flush must be called after the last Write.
func (w *Writer) Flush() error { return w.bw.Flush() }
