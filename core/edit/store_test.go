// core/edit/store_test.go
package edit

import "testing"

func storeOf(pairs ...string) *Store {
	s := NewStore()
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Add(Sequence{ID: pairs[i], Description: pairs[i], Bases: []byte(pairs[i+1])})
	}
	return s
}

func TestLookupFirstPrefixMatch(t *testing.T) {
	s := storeOf("seqA_1", "AAAA", "seqA_2", "CCCC", "seqB", "GGGG")
	idx, cand, ok := s.Lookup("seqA")
	if !ok || idx != 0 || cand != 2 {
		t.Fatalf("Lookup(seqA) = (%d, %d, %v), want (0, 2, true)", idx, cand, ok)
	}
	if got := s.At(idx).ID; got != "seqA_1" {
		t.Fatalf("resolved %q, want seqA_1", got)
	}
	// cached answer is identical
	if idx2, cand2, _ := s.Lookup("seqA"); idx2 != idx || cand2 != cand {
		t.Fatalf("cached lookup differs: (%d,%d)", idx2, cand2)
	}
	if _, _, ok := s.Lookup("nope"); ok {
		t.Fatalf("expected no match for unknown prefix")
	}
	if idx, cand, ok := s.Lookup("seqB"); !ok || idx != 2 || cand != 1 {
		t.Fatalf("Lookup(seqB) = (%d, %d, %v)", idx, cand, ok)
	}
}

func TestAddDuplicateKeepsPosition(t *testing.T) {
	s := storeOf("a", "AAAA", "b", "CCCC")
	if !s.Add(Sequence{ID: "a", Description: "a second", Bases: []byte("TTTT")}) {
		t.Fatalf("expected replacement")
	}
	if s.Len() != 2 {
		t.Fatalf("len=%d, want 2", s.Len())
	}
	if q := s.At(0); q.ID != "a" || string(q.Bases) != "TTTT" || q.Description != "a second" {
		t.Fatalf("unexpected first record %+v", q)
	}
}

func TestAddInvalidatesLookupCache(t *testing.T) {
	s := storeOf("x_2", "AAAA")
	if _, cand, _ := s.Lookup("x"); cand != 1 {
		t.Fatalf("cand=%d", cand)
	}
	s.Add(Sequence{ID: "x_3", Bases: []byte("CCCC")})
	if _, cand, _ := s.Lookup("x"); cand != 2 {
		t.Fatalf("stale cache: cand=%d, want 2", cand)
	}
}

func TestCloneIsDeep(t *testing.T) {
	src := storeOf("s", "ACGT")
	c := src.Clone()
	c.setBase(0, 1, 'T')
	if got, _ := src.Get("s"); string(got.Bases) != "ACGT" {
		t.Fatalf("source mutated through clone: %s", got.Bases)
	}
	if got, _ := c.Get("s"); string(got.Bases) != "ATGT" {
		t.Fatalf("clone not mutated: %s", got.Bases)
	}
}
