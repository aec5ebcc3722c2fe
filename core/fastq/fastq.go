// core/fastq/fastq.go
package fastq

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// PhredOffset is the Sanger/Illumina 1.8+ quality encoding offset.
const PhredOffset = 33

// MaxPhred is the largest score that still encodes to printable ASCII.
const MaxPhred = 126 - PhredOffset

// Record is one FASTQ entry. Qual holds raw Phred scores, not ASCII.
type Record struct {
	ID          string
	Description string
	Seq         []byte
	Qual        []byte
}

var ErrMalformed = errors.New("fastq: malformed record")

// StreamCtx parses four-line FASTQ records from r.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	line := 0
	next := func() ([]byte, bool) {
		for sc.Scan() {
			line++
			b := bytes.TrimRight(sc.Bytes(), "\r")
			if len(b) == 0 {
				continue
			}
			return b, true
		}
		return nil, false
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		hdr, ok := next()
		if !ok {
			break
		}
		if hdr[0] != '@' {
			return fmt.Errorf("%w: line %d: expected '@' header", ErrMalformed, line)
		}
		desc := string(bytes.TrimSpace(hdr[1:]))
		seq, ok1 := next()
		plus, ok2 := next()
		qual, ok3 := next()
		if !ok1 || !ok2 || !ok3 {
			return fmt.Errorf("%w: truncated record %q", ErrMalformed, desc)
		}
		if plus[0] != '+' {
			return fmt.Errorf("%w: line %d: expected '+' separator", ErrMalformed, line-1)
		}
		if len(qual) != len(seq) {
			return fmt.Errorf("%w: record %q: %d bases but %d qualities", ErrMalformed, desc, len(seq), len(qual))
		}
		q := make([]byte, len(qual))
		for i, c := range qual {
			if c < PhredOffset {
				return fmt.Errorf("%w: record %q: quality byte %d below offset", ErrMalformed, desc, c)
			}
			q[i] = c - PhredOffset
		}
		id := desc
		if i := bytes.IndexAny(hdr[1:], " \t"); i >= 0 {
			id = string(hdr[1 : 1+i])
		}
		if err := emit(Record{ID: id, Description: desc, Seq: append([]byte(nil), seq...), Qual: q}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fastq scan: %w", err)
	}
	return nil
}

// Writer emits @desc / seq / + / qual records.
type Writer struct {
	bw *bufio.Writer
}

func NewWriter(w io.Writer) *Writer { return &Writer{bw: bufio.NewWriterSize(w, 64<<10)} }

func (w *Writer) Write(r Record) error {
	if len(r.Qual) != len(r.Seq) {
		return fmt.Errorf("%w: record %q: %d bases but %d qualities", ErrMalformed, r.ID, len(r.Seq), len(r.Qual))
	}
	hdr := r.Description
	if hdr == "" {
		hdr = r.ID
	}
	w.bw.WriteByte('@')
	w.bw.WriteString(hdr)
	w.bw.WriteByte('\n')
	w.bw.Write(r.Seq)
	w.bw.WriteString("\n+\n")
	for _, q := range r.Qual {
		w.bw.WriteByte(min(q, MaxPhred) + PhredOffset)
	}
	// bufio.Writer latches the first error; report it here.
	return w.bw.WriteByte('\n')
}

func (w *Writer) Flush() error { return w.bw.Flush() }
