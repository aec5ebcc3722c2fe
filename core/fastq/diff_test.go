package fastq

import (
	"reflect"
	"testing"
)

func index(recs ...Record) *Index {
	x := NewIndex()
	for _, r := range recs {
		x.Add(r)
	}
	return x
}

func TestDiff(t *testing.T) {
	a := index(
		Record{Description: "r1", Seq: []byte("ACGT")},
		Record{Description: "r2 x", Seq: []byte("AAAA")},
		Record{Description: "r3", Seq: []byte("CC")},
		Record{Description: "only-a", Seq: []byte("G")},
	)
	b := index(
		Record{Description: "r3", Seq: []byte("CG")},
		Record{Description: "r1", Seq: []byte("ACGT")},
		Record{Description: "r2 x", Seq: []byte("AAAT")},
		Record{Description: "only-b", Seq: []byte("G")},
	)
	got := Diff(a, b)
	want := []string{"r2 x", "r3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Diff = %v, want %v", got, want)
	}
}

func TestIndexDuplicateKeepsFirstPosition(t *testing.T) {
	a := index(
		Record{Description: "r1", Seq: []byte("A")},
		Record{Description: "r2", Seq: []byte("C")},
		Record{Description: "r1", Seq: []byte("T")},
	)
	if !reflect.DeepEqual(a.Order, []string{"r1", "r2"}) || string(a.Seqs["r1"]) != "T" {
		t.Fatalf("unexpected index %+v", a)
	}
	b := index(Record{Description: "r1", Seq: []byte("T")}, Record{Description: "r2", Seq: []byte("G")})
	if got := Diff(a, b); !reflect.DeepEqual(got, []string{"r2"}) {
		t.Fatalf("Diff = %v", got)
	}
}
