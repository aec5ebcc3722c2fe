// internal/writers/store.go
package writers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"editfa-core/edit"
	"editfa-core/fasta"
)

// OutputPaths derives the per-variant output path for seqPath:
// dir/base.fa(.gz) → dir/base_<variant>.fa. prefix, when set, replaces
// dir/base. A seqPath of "-" needs a prefix.
func OutputPaths(seqPath, prefix string, variants []edit.Variant) (map[edit.Variant]string, error) {
	trimmed := strings.TrimSuffix(seqPath, ".gz")
	ext := filepath.Ext(trimmed)
	base := strings.TrimSuffix(trimmed, ext)
	if seqPath == "-" {
		if prefix == "" {
			return nil, fmt.Errorf("reading sequences from stdin requires --out-prefix")
		}
		ext = ".fasta"
	}
	if ext == "" {
		ext = ".fasta"
	}
	if prefix != "" {
		base = prefix
	}
	out := make(map[edit.Variant]string, len(variants))
	for _, v := range variants {
		out[v] = base + "_" + v.String() + ext
	}
	return out, nil
}

// StoreFromFASTA builds a Store in file order. It returns the number of
// records that replaced an earlier record with the same ID.
func StoreFromFASTA(recs []fasta.Record) (*edit.Store, int) {
	s := edit.NewStore()
	dups := 0
	for _, r := range recs {
		if s.Add(edit.Sequence{ID: r.ID, Description: r.Description, Bases: r.Seq}) {
			dups++
		}
	}
	return s, dups
}

// WriteStore writes every sequence of s to path as FASTA.
func WriteStore(path string, s *edit.Store, wrap int) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	w := fasta.NewWriter(fh)
	w.Wrap = wrap
	var werr error
	s.Each(func(q edit.Sequence) bool {
		werr = w.Write(fasta.Record{ID: q.ID, Description: q.Description, Seq: q.Bases})
		return werr == nil
	})
	if werr == nil {
		werr = w.Flush()
	}
	if cerr := fh.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write %s: %w", path, werr)
	}
	return nil
}
