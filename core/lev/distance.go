// core/lev/distance.go
package lev

import "levdist-core/segment"

// Distance returns the Levenshtein distance between s1 and s2: the
// minimum number of unit insertions, deletions, and substitutions
// turning one into the other, where mode picks the unit (code points
// or extended grapheme clusters). Symmetric in its string arguments
// and total over all inputs, including invalid UTF-8.
func Distance(s1, s2 string, mode segment.Mode) int {
	if s1 == s2 {
		return 0
	}
	if mode == segment.Grapheme {
		return distanceOf(segment.Graphemes(s1), segment.Graphemes(s2))
	}
	return distanceOf(segment.Runes(s1), segment.Runes(s2))
}

// distanceOf is the Wagner–Fischer kernel with a single rolling row
// sized by the shorter sequence: O(min(n,m)) memory, O(n*m) time.
func distanceOf[T comparable](a, b []T) int {
	// Matching prefix and suffix units cost nothing; trim them before
	// sizing the row.
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	// row[i] holds distance(a[:i], b[:j-1]) entering inner iteration i.
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(b); j++ {
		diag := row[0] // distance(a[:i-1], b[:j-1])
		row[0] = j
		for i := 1; i <= len(a); i++ {
			up := row[i]
			cost := diag
			if a[i-1] != b[j-1] {
				cost++ // substitute
				if up+1 < cost {
					cost = up + 1 // delete from b
				}
				if row[i-1]+1 < cost {
					cost = row[i-1] + 1 // delete from a
				}
			}
			row[i] = cost
			diag = up
		}
	}
	return row[len(a)]
}
