// core/edit/store.go
package edit

import "strings"

// Sequence is one named record of a Store. Bases is owned by the Store.
type Sequence struct {
	ID          string
	Description string
	Bases       []byte
}

type lookup struct {
	idx        int
	candidates int
}

// Store is an ordered identifier → sequence mapping. Each variant run owns its
// own Store; use Clone to fork one.
type Store struct {
	seqs  []Sequence
	byID  map[string]int
	cache map[string]lookup
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byID: make(map[string]int), cache: make(map[string]lookup)}
}

// Add appends s, or replaces the content of an existing record with the same
// ID in place (the earlier position is kept). It reports whether a
// replacement happened.
func (s *Store) Add(seq Sequence) (replaced bool) {
	if i, ok := s.byID[seq.ID]; ok {
		s.seqs[i] = seq
		return true
	}
	s.byID[seq.ID] = len(s.seqs)
	s.seqs = append(s.seqs, seq)
	clear(s.cache)
	return false
}

func (s *Store) Len() int { return len(s.seqs) }

// At returns the i-th sequence in store order.
func (s *Store) At(i int) Sequence { return s.seqs[i] }

// Get returns the sequence with exactly this ID.
func (s *Store) Get(id string) (Sequence, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Sequence{}, false
	}
	return s.seqs[i], true
}

// Each calls fn for every sequence in store order until fn returns false.
func (s *Store) Each(fn func(Sequence) bool) {
	for _, q := range s.seqs {
		if !fn(q) {
			return
		}
	}
}

// Lookup resolves a target prefix to the first sequence in store order whose
// ID starts with it. candidates is the number of IDs sharing the prefix;
// ambiguous prefixes still resolve to the first one.
func (s *Store) Lookup(prefix string) (idx, candidates int, ok bool) {
	if l, hit := s.cache[prefix]; hit {
		return l.idx, l.candidates, l.candidates > 0
	}
	l := lookup{idx: -1}
	for i := range s.seqs {
		if strings.HasPrefix(s.seqs[i].ID, prefix) {
			if l.candidates == 0 {
				l.idx = i
			}
			l.candidates++
		}
	}
	s.cache[prefix] = l
	return l.idx, l.candidates, l.candidates > 0
}

// Clone deep-copies the store, bases included, so mutations on the copy never
// reach s.
func (s *Store) Clone() *Store {
	c := &Store{
		seqs:  make([]Sequence, len(s.seqs)),
		byID:  make(map[string]int, len(s.byID)),
		cache: make(map[string]lookup),
	}
	for i, q := range s.seqs {
		q.Bases = append([]byte(nil), q.Bases...)
		c.seqs[i] = q
	}
	for k, v := range s.byID {
		c.byID[k] = v
	}
	return c
}

// setBase is the only mutation path.
func (s *Store) setBase(seqIdx, pos int, b byte) byte {
	prev := s.seqs[seqIdx].Bases[pos]
	s.seqs[seqIdx].Bases[pos] = b
	return prev
}
