package numeric

import (
	"errors"
	"slices"

	"github.com/samber/lo"
)

var ErrEmpty = errors.New("empty list")

// Median sorts a copy of v and returns the element at len/2, the upper middle for even lengths.
func Median(v []int) (int, error) {
	if len(v) == 0 {
		return 0, ErrEmpty
	}
	sorted := slices.Clone(v)
	slices.Sort(sorted)
	return sorted[len(sorted)/2], nil
}

// Mode returns the most frequent value; ties go to the smallest value.
func Mode(v []int) (int, error) {
	if len(v) == 0 {
		return 0, ErrEmpty
	}
	counts := lo.CountValues(v)

	best, bestCount := 0, 0
	for n, c := range counts {
		if c > bestCount || (c == bestCount && n < best) {
			best, bestCount = n, c
		}
	}
	return best, nil
}
