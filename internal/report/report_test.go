// internal/report/report_test.go
package report

import (
	"bufio"
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"editfa-core/edit"

	"editfa/pkg/api"
)

func sampleRows() []api.OutcomeV1 {
	r := edit.Record{Row: 1, TargetID: "s", Position: 2}
	return ToAPI([]edit.Outcome{
		{Record: r, Variant: edit.Edited, Status: edit.Applied, SequenceID: "s1", Candidates: 1, Index: 2, Offset: 0, Previous: 'G', Base: 'A'},
		{Record: edit.Record{Row: 2, TargetID: "q", Position: 9}, Variant: edit.Edited, Status: edit.NoMatchingSequence, Index: -1},
	})
}

func TestToAPI(t *testing.T) {
	rows := sampleRows()
	if rows[0].Status != "applied" || rows[0].Previous != "G" || rows[0].Base != "A" || rows[0].Variant != "edited" {
		t.Fatalf("row 0 = %+v", rows[0])
	}
	if rows[1].Status != "no_matching_sequence" || rows[1].Base != "" || rows[1].Index != -1 {
		t.Fatalf("row 1 = %+v", rows[1])
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, sampleRows()); err != nil {
		t.Fatal(err)
	}
	// Unapplied rows end in empty columns; keep their trailing tabs.
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 || lines[0] != TSVHeader {
		t.Fatalf("unexpected TSV:\n%s", buf.String())
	}
	if want := "edited\t1\ts\t2\tapplied\ts1\t1\t2\t0\tG\tA"; lines[1] != want {
		t.Fatalf("line 1 = %q, want %q", lines[1], want)
	}
	if n := len(strings.Split(lines[2], "\t")); n != len(strings.Split(TSVHeader, "\t")) {
		t.Fatalf("column count %d", n)
	}
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONL(&buf, sampleRows()); err != nil {
		t.Fatal(err)
	}
	sc := bufio.NewScanner(&buf)
	var got []api.OutcomeV1
	for sc.Scan() {
		var r api.OutcomeV1
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("line %q: %v", sc.Text(), err)
		}
		got = append(got, r)
	}
	if len(got) != 2 || got[0].SequenceID != "s1" || got[1].TargetID != "q" {
		t.Fatalf("unexpected JSONL rows %+v", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteJSONLReportsErrorWithoutBlocking(t *testing.T) {
	many := make([]api.OutcomeV1, 10_000)
	if err := WriteJSONL(failWriter{}, many); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestWriteSQLite(t *testing.T) {
	p := filepath.Join(t.TempDir(), "outcomes.db")
	if err := Write("sqlite", p, sampleRows()); err != nil {
		t.Fatal(err)
	}
	// rewriting replaces the previous rows
	if err := Write("sqlite", p, sampleRows()); err != nil {
		t.Fatal(err)
	}
	db, err := sql.Open("sqlite", p)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM edit_outcomes`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("rows = %d, want 2", n)
	}
	var base sql.NullString
	if err := db.QueryRow(`SELECT base FROM edit_outcomes WHERE manifest_row = 2`).Scan(&base); err != nil {
		t.Fatal(err)
	}
	if base.Valid {
		t.Fatalf("unapplied row should have NULL base, got %q", base.String)
	}
}

func TestWriteRegistry(t *testing.T) {
	if got := strings.Join(Formats(), ","); got != "json,jsonl,sqlite,tsv" {
		t.Fatalf("formats = %s", got)
	}
	if err := Write("xml", "x", nil); err == nil || !strings.Contains(err.Error(), "unknown report format") {
		t.Fatalf("want unknown format error, got %v", err)
	}
	var buf bytes.Buffer
	if err := WriteTo("jsonl", &buf, sampleRows()); err != nil || strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("WriteTo jsonl: %v %q", err, buf.String())
	}
	if err := WriteTo("sqlite", &buf, nil); err == nil {
		t.Fatalf("sqlite should not stream")
	}
	p := filepath.Join(t.TempDir(), "r.tsv")
	if err := Write("tsv", p, sampleRows()); err != nil {
		t.Fatal(err)
	}
	if b, _ := os.ReadFile(p); !strings.HasPrefix(string(b), TSVHeader) {
		t.Fatalf("tsv file missing header")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRows()); err != nil {
		t.Fatal(err)
	}
	var got []api.OutcomeV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || got[1].Status != "no_matching_sequence" {
		t.Fatalf("unexpected rows %+v", got)
	}
	if !strings.HasPrefix(buf.String(), "[\n  {") {
		t.Fatalf("output not indented: %q", buf.String())
	}
}
