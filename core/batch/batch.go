// core/batch/batch.go
package batch

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"levdist-core/lev"
	"levdist-core/segment"
)

// Pair is one unit of batch work: two strings to compare. Order only
// matters for presentation; the distance is symmetric.
type Pair struct {
	Source string
	Target string
}

// ErrInvalidThreads is returned when a caller asks for a non-positive
// worker count. Match with errors.Is.
var ErrInvalidThreads = errors.New("num_threads must be at least 1")

// Run computes the distance for every pair on a pool of threads
// workers and returns results index-aligned with pairs: slot i always
// holds the distance for pairs[i] no matter which worker computed it
// or in what order workers finished. threads must be >= 1 and is
// rejected before any work is dispatched; it is capped at len(pairs)
// so tiny batches do not spawn idle goroutines. The pool lives for the
// duration of the call. Either the full result or an error is
// returned, never a partially filled slice.
func Run(pairs []Pair, mode segment.Mode, threads int) ([]int, error) {
	if threads < 1 {
		return nil, ErrInvalidThreads
	}
	results := make([]int, len(pairs))
	if len(pairs) == 0 {
		return results, nil
	}
	if threads > len(pairs) {
		threads = len(pairs)
	}

	jobs := make(chan int, threads*2)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ferr error
	)
	fail := func(err error) {
		mu.Lock()
		if ferr == nil {
			ferr = err
		}
		mu.Unlock()
	}

	// Workers pull pair indices and write each result into its
	// pre-sized slot, so ordering holds by construction.
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := compute(pairs[i], mode, &results[i]); err != nil {
					fail(err)
				}
			}
		}()
	}

	for i := range pairs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if ferr != nil {
		return nil, ferr
	}
	return results, nil
}

// RunDefault is Run with the implementation default degree of
// parallelism, one worker per available CPU.
func RunDefault(pairs []Pair, mode segment.Mode) ([]int, error) {
	return Run(pairs, mode, runtime.NumCPU())
}

// compute fills slot with the distance for p. The distance kernel is
// total over well-formed input; a panic escaping it is converted to an
// error so the batch fails atomically instead of tearing down the
// process with a half-written result.
func compute(p Pair, mode segment.Mode, slot *int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("distance(%q, %q): %v", p.Source, p.Target, r)
		}
	}()
	*slot = lev.Distance(p.Source, p.Target, mode)
	return nil
}
