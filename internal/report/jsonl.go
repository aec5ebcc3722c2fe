// internal/report/jsonl.go
package report

import (
	"encoding/json"
	"io"

	"editfa/internal/jsonlutil"
	"editfa/internal/writers"
	"editfa/pkg/api"
)

func init() {
	Register("jsonl", func(path string, rows []api.OutcomeV1) error {
		return toFile(path, func(w io.Writer) error { return WriteJSONL(w, rows) })
	})
	RegisterStream("jsonl", WriteJSONL)
}

// WriteJSONL streams one OutcomeV1 object per line.
func WriteJSONL(w io.Writer, rows []api.OutcomeV1) error {
	in, done := jsonlutil.Start[api.OutcomeV1](w, 64,
		func(enc *json.Encoder, r api.OutcomeV1) error { return enc.Encode(r) },
		writers.IsBrokenPipe,
	)
	for _, r := range rows {
		in <- r
	}
	close(in)
	return <-done
}
