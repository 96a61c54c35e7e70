package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedianMode(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		median int
		mode   int
	}{
		{name: "exercise list", input: []int{1, 2, 3, 4, 5, 2, 2, 3, 4, 5, 6}, median: 3, mode: 2},
		{name: "single", input: []int{7}, median: 7, mode: 7},
		{name: "even length takes upper middle", input: []int{4, 1, 3, 2}, median: 3, mode: 1},
		{name: "negatives", input: []int{-3, -1, -3, 5}, median: -1, mode: -3},
		{name: "tie goes to smallest", input: []int{9, 9, 4, 4, 6}, median: 6, mode: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]int(nil), tt.input...)

			median, err := Median(in)
			require.NoError(t, err)
			assert.Equal(t, tt.median, median)

			mode, err := Mode(in)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, mode)

			assert.Equal(t, tt.input, in, "input must not be reordered")
		})
	}
}

func TestMedianMode_Empty(t *testing.T) {
	_, err := Median(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Mode([]int{})
	assert.ErrorIs(t, err, ErrEmpty)
}
