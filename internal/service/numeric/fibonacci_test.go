package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFibonacci_Of(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 0, want: "0"},
		{n: 1, want: "1"},
		{n: 2, want: "1"},
		{n: 10, want: "55"},
		{n: 50, want: "12586269025"},
		{n: 92, want: "7540113804746346429"},
		{n: 100, want: "354224848179261915075"},
	}

	f := NewFibonacci()
	for _, tt := range tests {
		got, err := f.Of(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "F(%d)", tt.n)
	}
}

func TestFibonacci_CacheFilledLazily(t *testing.T) {
	f := NewFibonacci()
	assert.Equal(t, 2, f.Cached())

	_, err := f.Of(30)
	require.NoError(t, err)
	assert.Equal(t, 31, f.Cached())

	_, err = f.Of(10)
	require.NoError(t, err)
	assert.Equal(t, 31, f.Cached())
}

func TestFibonacci_ResultIsCopy(t *testing.T) {
	f := NewFibonacci()
	v, _ := f.Of(10)
	v.SetInt64(-1)

	again, _ := f.Of(10)
	assert.Equal(t, "55", again.String())
}

func TestFibonacci_OutOfRange(t *testing.T) {
	f := NewFibonacci()

	_, err := f.Of(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = f.Of(MaxFibonacci + 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
