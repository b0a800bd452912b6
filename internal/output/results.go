// internal/output/results.go
package output

import (
	"levdist-core/batch"
	"levdist-core/segment"
	"levdist/pkg/api"
)

// ToAPIResults joins the input pairs with their index-aligned distances
// into the stable wire schema (v1).
func ToAPIResults(pairs []batch.Pair, distances []int, mode segment.Mode) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(pairs))
	for i, p := range pairs {
		out = append(out, api.ResultV1{
			Index:    i,
			Source:   p.Source,
			Target:   p.Target,
			Mode:     mode.String(),
			Distance: distances[i],
		})
	}
	return out
}
