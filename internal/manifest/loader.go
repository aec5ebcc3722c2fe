// internal/manifest/loader.go
package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"editfa-core/edit"
	"editfa-core/fasta"
)

// Required column names.
const (
	ColTarget     = "orf"
	ColPos        = "pos"
	ColReference  = "mrna_con"
	ColUpstream   = "upstream_base"
	ColDownstream = "downstream_base"
	ColUnedited   = "gdna_con"
	ColEdited     = "edited"
)

var Required = []string{ColTarget, ColPos, ColReference, ColUpstream, ColDownstream, ColUnedited, ColEdited}

// ErrMissingColumn is wrapped when the header lacks a required column.
var ErrMissingColumn = errors.New("manifest: missing required column")

// Delimiter resolves a --delimiter value. An empty name picks tab for
// .tsv/.tab files (after stripping .gz) and comma otherwise.
func Delimiter(name, path string) (rune, error) {
	switch name {
	case "":
		ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".gz")))
		if ext == ".tsv" || ext == ".tab" {
			return '\t', nil
		}
		return ',', nil
	case "tab", `\t`, "\t":
		return '\t', nil
	case "comma":
		return ',', nil
	}
	r, n := utf8.DecodeRuneInString(name)
	if n != len(name) || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", name)
	}
	return r, nil
}

// LoadFile reads a manifest from path ("-" for stdin, gzip allowed).
func LoadFile(path string, comma rune) ([]edit.Record, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Load(rc, path, comma)
}

// Load parses a headed table into records, in row order. name is used only
// in error messages.
func Load(r io.Reader, name string, comma rune) ([]edit.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty manifest", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var list []edit.Record
	row := 0
	for {
		f, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		if blank(f) {
			continue
		}
		row++
		rec, err := parseRow(f, cols)
		if err != nil {
			return nil, fmt.Errorf("%s:%d %w", name, line, err)
		}
		rec.Row = row
		list = append(list, rec)
	}
	return list, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	var missing []string
	for _, c := range Required {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func blank(f []string) bool {
	for _, s := range f {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

func parseRow(f []string, cols map[string]int) (edit.Record, error) {
	get := func(c string) string {
		if i := cols[c]; i < len(f) {
			return strings.TrimSpace(f[i])
		}
		return ""
	}
	var rec edit.Record
	rec.TargetID = get(ColTarget)
	if rec.TargetID == "" {
		return rec, fmt.Errorf("column %s: empty", ColTarget)
	}
	pos, err := parsePos(get(ColPos))
	if err != nil {
		return rec, fmt.Errorf("column %s: %w", ColPos, err)
	}
	rec.Position = pos

	for _, b := range []struct {
		col string
		dst *byte
	}{
		{ColReference, &rec.Reference},
		{ColUpstream, &rec.Upstream},
		{ColDownstream, &rec.Downstream},
		{ColUnedited, &rec.Unedited},
		{ColEdited, &rec.Edited},
	} {
		v := get(b.col)
		if len(v) != 1 {
			return rec, fmt.Errorf("column %s: want a single base, got %q", b.col, v)
		}
		*b.dst = strings.ToUpper(v)[0]
	}
	return rec, nil
}

// parsePos accepts integers, including integral floats such as "12.0" that
// spreadsheet exports produce.
func parsePos(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}
