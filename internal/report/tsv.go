// internal/report/tsv.go
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"editfa/pkg/api"
)

// TSVHeader is the column order of the TSV report.
const TSVHeader = "variant\trow\ttarget_id\tposition\tstatus\tsequence_id\tcandidates\tindex\toffset\tprevious\tbase"

func init() {
	Register("tsv", func(path string, rows []api.OutcomeV1) error {
		return toFile(path, func(w io.Writer) error { return WriteTSV(w, rows) })
	})
	RegisterStream("tsv", WriteTSV)
}

// WriteTSV writes rows with a header line.
func WriteTSV(w io.Writer, rows []api.OutcomeV1) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%s\t%d\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			r.Variant, r.Row, r.TargetID, r.Position, r.Status,
			r.SequenceID, r.Candidates, r.Index, r.Offset, r.Previous, r.Base,
		); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// toFile creates path and runs write against it.
func toFile(path string, write func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(fh); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return fh.Close()
}
