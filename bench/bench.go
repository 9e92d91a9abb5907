// Package bench drives the binary radix sorts over random inputs, timing
// them against the library sort and verifying their output matches it.
package bench

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	binsort "github.com/LorienLV/binary-radix-sort"
)

// Result accumulates the wall-clock time spent by each sort over all
// repetitions for one element width.
type Result struct {
	TypeName  string
	Baseline  time.Duration
	Recursive time.Duration
	Iterative time.Duration
}

// Report is the outcome of a full benchmark run.
type Report struct {
	Reps    int
	Size    int
	Seed    int64
	Results []Result
}

// FirstMismatch returns the first index at which a and b differ, or -1 if
// they are equal. Slices of different lengths are never equal; they
// mismatch at the length of the shorter one.
func FirstMismatch[T constraints.Unsigned](a, b []T) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return len(a)
		}
		return len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

// randomValues returns size values drawn from rng. No particular
// distribution is promised; the sorts must not depend on one.
func randomValues[T constraints.Unsigned](rng *rand.Rand, size int) []T {
	vals := make([]T, size)
	for i := range vals {
		vals[i] = T(rng.Uint64())
	}
	return vals
}

// timeSort runs sort on v and returns the wall-clock time it took.
func timeSort[T constraints.Unsigned](sort func([]T), v []T) time.Duration {
	begin := time.Now()
	sort(v)
	return time.Since(begin)
}

// runWidth times the library sort and both radix sort drivers over reps
// random inputs of the given size, checking after every repetition that
// the three outputs agree.
func runWidth[T constraints.Unsigned](rng *rand.Rand, typeName string, reps, size int) (Result, error) {
	res := Result{TypeName: typeName}

	for r := 0; r < reps; r++ {
		v1 := randomValues[T](rng, size)
		v2 := slices.Clone(v1)
		v3 := slices.Clone(v1)

		res.Baseline += timeSort(func(v []T) { slices.Sort(v) }, v1)
		res.Recursive += timeSort(binsort.Sort[T], v2)
		res.Iterative += timeSort(binsort.SortIterative[T], v3)

		if i := FirstMismatch(v1, v2); i >= 0 {
			return res, fmt.Errorf("%s: recursive sort disagrees with baseline at index %d: %v != %v",
				typeName, i, v2[i], v1[i])
		}
		if i := FirstMismatch(v1, v3); i >= 0 {
			return res, fmt.Errorf("%s: iterative sort disagrees with baseline at index %d: %v != %v",
				typeName, i, v3[i], v1[i])
		}
	}
	return res, nil
}

// Run executes the configured benchmark over every supported width and
// returns one Result per width.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	report := &Report{Reps: cfg.Reps, Size: cfg.Size, Seed: cfg.Seed}

	r8, err := runWidth[uint8](rng, "uint8", cfg.Reps, cfg.Size)
	if err != nil {
		return nil, err
	}
	r16, err := runWidth[uint16](rng, "uint16", cfg.Reps, cfg.Size)
	if err != nil {
		return nil, err
	}
	r32, err := runWidth[uint32](rng, "uint32", cfg.Reps, cfg.Size)
	if err != nil {
		return nil, err
	}
	r64, err := runWidth[uint64](rng, "uint64", cfg.Reps, cfg.Size)
	if err != nil {
		return nil, err
	}

	report.Results = append(report.Results, r8, r16, r32, r64)
	return report, nil
}
