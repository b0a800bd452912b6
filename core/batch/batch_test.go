// core/batch/batch_test.go
package batch

import (
	"errors"
	"runtime"
	"testing"

	"levdist-core/lev"
	"levdist-core/segment"
)

func TestRunEmpty(t *testing.T) {
	got, err := Run(nil, segment.CodePoint, 4)
	if err != nil {
		t.Fatalf("Run(nil) error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("Run(nil) = %v, want empty non-nil slice", got)
	}

	got, err = RunDefault([]Pair{}, segment.Grapheme)
	if err != nil || len(got) != 0 {
		t.Fatalf("RunDefault(empty) = %v, %v, want empty, nil", got, err)
	}
}

func TestRunSinglePair(t *testing.T) {
	got, err := Run([]Pair{{"kitten", "sitting"}}, segment.CodePoint, 8)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("Run = %v, want [3]", got)
	}
}

func TestRunOrderMatchesInput(t *testing.T) {
	pairs := []Pair{
		{"kitten", "sitting"},
		{"hello", "hello"},
		{"", "world"},
		{"café", "cafe"},
		{"saturday", "sunday"},
		{"", ""},
	}
	want := []int{3, 0, 5, 1, 3, 0}
	for _, threads := range []int{1, 2, 3, len(pairs), 64} {
		got, err := Run(pairs, segment.CodePoint, threads)
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		if len(got) != len(want) {
			t.Fatalf("threads=%d: len %d, want %d", threads, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("threads=%d: slot %d = %d, want %d", threads, i, got[i], want[i])
			}
		}
	}
}

func TestRunInvalidThreads(t *testing.T) {
	for _, threads := range []int{0, -1, -100} {
		got, err := Run([]Pair{{"test", "test"}}, segment.CodePoint, threads)
		if !errors.Is(err, ErrInvalidThreads) {
			t.Errorf("threads=%d: err = %v, want ErrInvalidThreads", threads, err)
		}
		if got != nil {
			t.Errorf("threads=%d: got %v, want nil result", threads, got)
		}
		if err != nil && err.Error() != "num_threads must be at least 1" {
			t.Errorf("threads=%d: message %q", threads, err.Error())
		}
	}
}

// The batch must be element-wise identical to the sequential
// single-pair computation for every legal thread count.
func TestRunMatchesSequential(t *testing.T) {
	pairs := []Pair{
		{"kitten", "sitting"},
		{"saturday", "sunday"},
		{"", ""},
		{"abc", ""},
		{"अनुच्छेद", "अनुछेद"},
		{"é", "e"},
		{"👩‍👩‍👧‍👦", "👨‍👩‍👧‍👦"},
		{"ä", "ä"},
	}
	for _, mode := range []segment.Mode{segment.CodePoint, segment.Grapheme} {
		want := make([]int, len(pairs))
		for i, p := range pairs {
			want[i] = lev.Distance(p.Source, p.Target, mode)
		}
		for _, threads := range []int{1, 2, 7, runtime.NumCPU(), len(pairs) * 3} {
			got, err := Run(pairs, mode, threads)
			if err != nil {
				t.Fatalf("mode=%v threads=%d: %v", mode, threads, err)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("mode=%v threads=%d slot %d: got %d, want %d",
						mode, threads, i, got[i], want[i])
				}
			}
		}
	}
}

func TestRunGraphemeMode(t *testing.T) {
	pairs := []Pair{
		{"🦀", "🐍"},
		{"café", "cafe"},
		{"अनुच्छेद", "अनुछेद"},
		{"é", "e"},
	}
	got, err := Run(pairs, segment.Grapheme, 2)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	for i, d := range got {
		if d != 1 {
			t.Errorf("slot %d = %d, want 1", i, d)
		}
	}
}

func TestRunLargeBatchStress(t *testing.T) {
	words := []string{"kitten", "sitting", "saturday", "sunday", "", "café", "cafe", "hello"}
	var pairs []Pair
	for i := 0; i < 500; i++ {
		pairs = append(pairs, Pair{words[i%len(words)], words[(i*3+1)%len(words)]})
	}
	want, err := Run(pairs, segment.CodePoint, 1)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Run(pairs, segment.CodePoint, 16)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slot %d: parallel %d != sequential %d", i, got[i], want[i])
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	pairs := []Pair{{"kitten", "sitting"}, {"hello", "world"}}
	first, err := RunDefault(pairs, segment.CodePoint)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		again, err := RunDefault(pairs, segment.CodePoint)
		if err != nil {
			t.Fatal(err)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d slot %d: %d != %d", i, j, again[j], first[j])
			}
		}
	}
}
