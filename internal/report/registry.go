// internal/report/registry.go
package report

import (
	"fmt"
	"io"
	"sort"

	"editfa-core/edit"

	"editfa/pkg/api"
)

// Sink writes a full report to path.
type Sink func(path string, rows []api.OutcomeV1) error

// Stream writes a full report to an open writer (stdout).
type Stream func(w io.Writer, rows []api.OutcomeV1) error

// Sinks and Streams map format → writer. Register in init() blocks; last
// registration wins. File-backed formats (sqlite) have no Stream.
var (
	Sinks   = map[string]Sink{}
	Streams = map[string]Stream{}
)

func Register(format string, s Sink) { Sinks[format] = s }

func RegisterStream(format string, s Stream) { Streams[format] = s }

// Formats lists registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(Sinks))
	for k := range Sinks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the sink registered for format.
func Write(format, path string, rows []api.OutcomeV1) error {
	s, ok := Sinks[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no sink registered)", format)
	}
	return s(path, rows)
}

// WriteTo dispatches to the stream registered for format.
func WriteTo(format string, w io.Writer, rows []api.OutcomeV1) error {
	s, ok := Streams[format]
	if !ok {
		return fmt.Errorf("report format %q cannot be written to a stream", format)
	}
	return s(w, rows)
}

// ToAPI converts engine outcomes into report rows.
func ToAPI(outs []edit.Outcome) []api.OutcomeV1 {
	rows := make([]api.OutcomeV1, len(outs))
	for i, o := range outs {
		r := api.OutcomeV1{
			Variant:    o.Variant.String(),
			Row:        o.Record.Row,
			TargetID:   o.Record.TargetID,
			Position:   o.Record.Position,
			Status:     o.Status.String(),
			SequenceID: o.SequenceID,
			Candidates: o.Candidates,
			Index:      o.Index,
			Offset:     o.Offset,
		}
		if o.Status == edit.Applied {
			r.Previous = string(o.Previous)
			r.Base = string(o.Base)
		}
		rows[i] = r
	}
	return rows
}
