// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"levdist/pkg/api"
)

// WriteText prints one TSV line per result.
func WriteText(w io.Writer, list []api.ResultV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "source\ttarget\tdistance"); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", r.Source, r.Target, r.Distance); err != nil {
			return err
		}
	}
	return nil
}
