// core/pwm/pwm.go
package pwm

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Bases is the row order of a matrix.
const Bases = "ACGT"

// PerfectPhred is assigned to columns whose top probability is 1.
const PerfectPhred = 42

// maxPhred keeps scores printable once offset by 33.
const maxPhred = 93

var ErrShape = errors.New("pwm: matrix must have 4 rows of equal length")

// Matrix is one position weight matrix: Rows[b][i] is the probability of
// Bases[b] at position i.
type Matrix struct {
	ID   string
	Rows [][]float64
}

// Len is the number of positions.
func (m Matrix) Len() int {
	if len(m.Rows) == 0 {
		return 0
	}
	return len(m.Rows[0])
}

// Validate checks the 4×L shape.
func (m Matrix) Validate() error {
	if len(m.Rows) != len(Bases) {
		return fmt.Errorf("%w: %q has %d rows", ErrShape, m.ID, len(m.Rows))
	}
	for i, r := range m.Rows {
		if len(r) != len(m.Rows[0]) {
			return fmt.Errorf("%w: %q row %c has %d columns, want %d", ErrShape, m.ID, Bases[i], len(r), len(m.Rows[0]))
		}
	}
	return nil
}

// StreamCtx parses '>'-headed matrices from r. Lines before the first header
// are ignored. A header repeated later in the stream is emitted again; callers
// decide how to merge.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Matrix) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var (
		cur  Matrix
		have bool
		ln   int
	)
	for sc.Scan() {
		ln++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if have {
				if err := emit(cur); err != nil {
					return err
				}
			}
			cur = Matrix{ID: string(line[1:])}
			have = true
			continue
		}
		if !have {
			continue
		}
		fields := bytes.Fields(line)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(string(f), 64)
			if err != nil {
				return fmt.Errorf("line %d: %w", ln, err)
			}
			row[i] = v
		}
		cur.Rows = append(cur.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("pwm scan: %w", err)
	}
	if have {
		return emit(cur)
	}
	return nil
}

// Phred converts the probability of the called base to a quality score.
func Phred(p float64) byte {
	if p >= 1.0 {
		return PerfectPhred
	}
	q := math.Floor(-10 * math.Log10(1-p+1e-10))
	switch {
	case q < 0 || math.IsNaN(q):
		return 0
	case q > maxPhred:
		return maxPhred
	}
	return byte(q)
}

// Consensus calls the most probable base per column (ties go to the earlier
// row) and its Phred quality.
func Consensus(m Matrix) (seq, qual []byte, err error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	n := m.Len()
	seq = make([]byte, n)
	qual = make([]byte, n)
	for i := 0; i < n; i++ {
		best := 0
		for b := 1; b < len(Bases); b++ {
			if m.Rows[b][i] > m.Rows[best][i] {
				best = b
			}
		}
		seq[i] = Bases[best]
		qual[i] = Phred(m.Rows[best][i])
	}
	return seq, qual, nil
}
