// internal/pairfile/loader_test.go
package pairfile

import (
	"strings"
	"testing"
)

func TestLoadBasic(t *testing.T) {
	in := "kitten\tsitting\n" +
		"\n" +
		"# comment line\n" +
		"hello\thello\n" +
		"\tworld\n" // empty source is a valid field
	pairs, err := Load(strings.NewReader(in), "test.tsv")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}
	if pairs[0].Source != "kitten" || pairs[0].Target != "sitting" {
		t.Errorf("pair 0 = %+v", pairs[0])
	}
	if pairs[2].Source != "" || pairs[2].Target != "world" {
		t.Errorf("pair 2 = %+v", pairs[2])
	}
}

func TestLoadKeepsSpaces(t *testing.T) {
	pairs, err := Load(strings.NewReader("a phrase \t another one\n"), "t")
	if err != nil {
		t.Fatal(err)
	}
	if pairs[0].Source != "a phrase " || pairs[0].Target != " another one" {
		t.Errorf("fields were trimmed: %+v", pairs[0])
	}
}

func TestLoadBadFieldCount(t *testing.T) {
	for _, in := range []string{
		"only-one-field\n",
		"a\tb\tc\n",
	} {
		_, err := Load(strings.NewReader(in), "bad.tsv")
		if err == nil {
			t.Errorf("Load(%q) should fail", in)
			continue
		}
		if !strings.Contains(err.Error(), "bad.tsv:1") {
			t.Errorf("error %q should carry file:line position", err)
		}
	}
}

func TestLoadEmpty(t *testing.T) {
	pairs, err := Load(strings.NewReader("# nothing here\n\n"), "empty.tsv")
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 0 {
		t.Errorf("got %d pairs, want 0", len(pairs))
	}
}

func TestLoadTSVMissingFile(t *testing.T) {
	if _, err := LoadTSV("/no/such/file.tsv"); err == nil {
		t.Error("expected error for missing file")
	}
}
