// internal/report/json.go
package report

import (
	"io"

	"editfa/internal/jsonutil"
	"editfa/pkg/api"
)

func init() {
	Register("json", func(path string, rows []api.OutcomeV1) error {
		return toFile(path, func(w io.Writer) error { return WriteJSON(w, rows) })
	})
	RegisterStream("json", WriteJSON)
}

// WriteJSON writes all rows as one indented JSON array.
func WriteJSON(w io.Writer, rows []api.OutcomeV1) error {
	return jsonutil.EncodePretty(w, rows)
}
