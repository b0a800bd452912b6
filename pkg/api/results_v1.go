// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one computed pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Index    int    `json:"index"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Mode     string `json:"mode,omitempty"`
	Distance int    `json:"distance"`
}
