// internal/output/json.go
package output

import (
	"io"

	"levdist/internal/jsonutil"
	"levdist/pkg/api"
)

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []api.ResultV1) error {
	return jsonutil.EncodePretty(w, list)
}

// WriteJSONL writes one compact JSON object per line.
func WriteJSONL(w io.Writer, list []api.ResultV1) error {
	for _, r := range list {
		if err := jsonutil.EncodeLine(w, r); err != nil {
			return err
		}
	}
	return nil
}
