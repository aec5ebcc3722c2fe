// core/fastq/diff.go
package fastq

import "bytes"

// Index maps each header to its sequence. Later duplicates overwrite the
// value but keep the first position in Order.
type Index struct {
	Order []string
	Seqs  map[string][]byte
}

func NewIndex() *Index { return &Index{Seqs: map[string][]byte{}} }

func (x *Index) Add(r Record) {
	if _, ok := x.Seqs[r.Description]; !ok {
		x.Order = append(x.Order, r.Description)
	}
	x.Seqs[r.Description] = r.Seq
}

// Diff returns headers present in both indexes whose sequences differ,
// in a's order.
func Diff(a, b *Index) []string {
	var out []string
	for _, h := range a.Order {
		sb, ok := b.Seqs[h]
		if ok && !bytes.Equal(a.Seqs[h], sb) {
			out = append(out, h)
		}
	}
	return out
}
