// internal/pairfile/loader.go
package pairfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"levdist-core/batch"
)

// Load reads tab-separated string pairs from r; name is used in error
// positions. Each data line is source<TAB>target. Blank lines and lines
// whose first non-space byte is '#' are skipped. Fields are taken
// verbatim (no trimming), so pairs may carry leading or trailing spaces.
func Load(r io.Reader, name string) ([]batch.Pair, error) {
	var list []batch.Pair
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 4<<20)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) != 2 {
			return nil, fmt.Errorf("%s:%d want 2 tab-separated fields, got %d", name, ln, len(f))
		}
		list = append(list, batch.Pair{Source: f[0], Target: f[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return list, nil
}

// LoadTSV opens path ('-' for STDIN) and loads its pairs.
func LoadTSV(path string) ([]batch.Pair, error) {
	if path == "-" {
		return Load(os.Stdin, "stdin")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Load(fh, path)
}
