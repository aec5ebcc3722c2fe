// pkg/api/outcome_v1.go
package api

// OutcomeV1 is the stable report schema for one edit attempt in one variant.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type OutcomeV1 struct {
	Variant    string `json:"variant"` // "unedited" | "edited"
	Row        int    `json:"row"`
	TargetID   string `json:"target_id"`
	Position   int    `json:"position"`
	Status     string `json:"status"` // "applied" | "no_matching_sequence" | "no_matching_offset"
	SequenceID string `json:"sequence_id,omitempty"`
	Candidates int    `json:"candidates,omitempty"`
	Index      int    `json:"index"` // -1 unless applied
	Offset     int    `json:"offset"`
	Previous   string `json:"previous,omitempty"`
	Base       string `json:"base,omitempty"`
}
