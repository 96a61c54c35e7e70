package input

import (
	"context"
	"math"
	"testing"

	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLines struct {
	lines   []string
	prompts []string
}

func (f *fakeLines) ReadLine(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if len(f.lines) == 0 {
		return "", core.ErrEndOfInput
	}
	l := f.lines[0]
	f.lines = f.lines[1:]
	return l, nil
}

func newReader(lines ...string) (*Reader, *fakeLines) {
	f := &fakeLines{lines: lines}
	return NewReader(f, 0), f
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "42", want: 42},
		{input: " 7 ", want: 7},
		{input: "-12", want: -12},
		{input: "+3", want: 3},
		{input: "0", want: 0},
		{input: "9223372036854775807", want: math.MaxInt64},
		{input: "9223372036854775808", wantErr: true},
		{input: "4.5", wantErr: true},
		{input: "0x10", wantErr: true},
		{input: "ten", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInt(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "98.6", want: 98.6},
		{input: "-40", want: -40},
		{input: "1e3", want: 1000},
		{input: "3", want: 3},
		{input: "warm", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFloat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
		got, err := ParseInt(FormatInt(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	for _, f := range []float64{0, 0.1, -40, 98.6, 1.0 / 3.0, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		got, err := ParseFloat(FormatFloat(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestReader_Text(t *testing.T) {
	r, _ := newReader("  f ", " Sally ")

	s, err := r.Text("Enter scale (F or C):", true)
	require.NoError(t, err)
	assert.Equal(t, "F", s)

	s, err = r.Text("Name:", false)
	require.NoError(t, err)
	assert.Equal(t, "Sally", s)
}

func TestReader_IntSingleShot(t *testing.T) {
	r, _ := newReader("nope")

	_, err := r.Int("guess")
	assert.ErrorIs(t, err, core.ErrParse)

	_, err = r.Int("guess")
	assert.ErrorIs(t, err, core.ErrEndOfInput)
}

func TestReader_AskIntRetriesUntilValid(t *testing.T) {
	r, f := newReader("abc", "-5", "", "12")

	n, err := r.AskInt(context.Background(), "Please enter a non-negative integer:", NonNegativeInt)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.Len(t, f.prompts, 4)
}

func TestReader_AskIntNilAcceptsNegative(t *testing.T) {
	r, _ := newReader("-5")

	n, err := r.AskInt(context.Background(), "n", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), n)
}

func TestReader_AskFloatAllowsNegativeTemperature(t *testing.T) {
	r, _ := newReader("cold", "-40")

	f, err := r.AskFloat(context.Background(), "Enter temperature in degrees:", nil)
	require.NoError(t, err)
	assert.Equal(t, -40.0, f)
}

func TestReader_AskEndOfInput(t *testing.T) {
	r, f := newReader("x", "y")

	_, err := r.AskFloat(context.Background(), "Enter width:", NonNegativeFloat)
	assert.ErrorIs(t, err, core.ErrEndOfInput)
	assert.Len(t, f.prompts, 3)
}

func TestReader_AskChoice(t *testing.T) {
	r, f := newReader("K", "", "c")

	s, err := r.AskChoice(context.Background(), "Enter scale (F or C):", []string{"F", "C"}, true)
	require.NoError(t, err)
	assert.Equal(t, "C", s)
	assert.Len(t, f.prompts, 3)
}

func TestReader_AskMaxAttempts(t *testing.T) {
	f := &fakeLines{lines: []string{"a", "b", "c", "4"}}
	r := NewReader(f, 2)

	_, err := r.AskInt(context.Background(), "n", nil)
	assert.ErrorIs(t, err, retry.ErrAttemptsExhausted)
	assert.ErrorIs(t, err, core.ErrParse)
	assert.Len(t, f.prompts, 2)
}

func TestReader_AskRejectedReported(t *testing.T) {
	f := &fakeLines{lines: []string{"500"}}
	r := NewReader(f, 1)

	_, err := r.AskInt(context.Background(), "guess", IntBetween(1, 100))
	assert.ErrorIs(t, err, ErrRejected)
}

func TestReader_AskCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, f := newReader("1")

	_, err := r.AskInt(ctx, "n", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.prompts)
}

func TestIntBetween(t *testing.T) {
	in := IntBetween(1, 100)
	assert.True(t, in(1))
	assert.True(t, in(100))
	assert.False(t, in(0))
	assert.False(t, in(101))
}
