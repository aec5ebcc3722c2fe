// core/edit/engine.go
package edit

import "fmt"

// Status is the result class of one edit attempt.
type Status int

const (
	Applied Status = iota
	NoMatchingSequence
	NoMatchingOffset
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case NoMatchingSequence:
		return "no_matching_sequence"
	case NoMatchingOffset:
		return "no_matching_offset"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Outcome describes what happened to one Record in one variant run.
// SequenceID and Candidates are set whenever the target resolved; Index,
// Offset, Previous and Base only when Status == Applied.
type Outcome struct {
	Record     Record
	Variant    Variant
	Status     Status
	SequenceID string
	Candidates int
	Index      int
	Offset     int
	Previous   byte
	Base       byte
}

// Engine applies records for a single variant.
type Engine struct {
	variant Variant
}

// New creates an Engine for v. Any other selector is a configuration error.
func New(v Variant) (*Engine, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w (got %q)", ErrInvalidVariant, string(v))
	}
	return &Engine{variant: v}, nil
}

func (e *Engine) Variant() Variant { return e.variant }

// Apply resolves r against s and, on a match, overwrites the single base at
// the resolved index in place.
func (e *Engine) Apply(s *Store, r Record) Outcome {
	out := Outcome{Record: r, Variant: e.variant, Index: -1}

	si, cand, ok := s.Lookup(r.TargetID)
	if !ok {
		out.Status = NoMatchingSequence
		return out
	}
	out.SequenceID = s.seqs[si].ID
	out.Candidates = cand

	idx, off, ok := ResolveSite(s.seqs[si].Bases, r)
	if !ok {
		out.Status = NoMatchingOffset
		return out
	}
	// Valid() was checked in New.
	base, _ := r.Replacement(e.variant)
	out.Status = Applied
	out.Index = idx
	out.Offset = off
	out.Base = base
	out.Previous = s.setBase(si, idx, base)
	return out
}

// Run applies records to s in order. Later records see earlier mutations, so
// two records resolving to the same index leave the last one's base.
func (e *Engine) Run(s *Store, records []Record) []Outcome {
	outs := make([]Outcome, 0, len(records))
	for _, r := range records {
		outs = append(outs, e.Apply(s, r))
	}
	return outs
}

// RunVariant clones src and runs every record against the clone. src is only
// read, so several variants may run concurrently from the same source.
func RunVariant(src *Store, records []Record, v Variant) (*Store, []Outcome, error) {
	eng, err := New(v)
	if err != nil {
		return nil, nil, err
	}
	dst := src.Clone()
	return dst, eng.Run(dst, records), nil
}

// Summary counts outcomes by status.
type Summary struct {
	Applied    int
	NoSequence int
	NoOffset   int
	Ambiguous  int // resolved targets whose prefix matched more than one ID
}

func (s Summary) Total() int { return s.Applied + s.NoSequence + s.NoOffset }

// Summarize tallies outcomes.
func Summarize(outs []Outcome) Summary {
	var s Summary
	for _, o := range outs {
		switch o.Status {
		case Applied:
			s.Applied++
		case NoMatchingSequence:
			s.NoSequence++
		case NoMatchingOffset:
			s.NoOffset++
		}
		if o.Candidates > 1 {
			s.Ambiguous++
		}
	}
	return s
}
