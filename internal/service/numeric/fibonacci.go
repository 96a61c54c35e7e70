package numeric

import (
	"errors"
	"fmt"
	"math/big"
)

// MaxFibonacci bounds the recursion depth of Fibonacci.Of.
const MaxFibonacci = 10000

var ErrOutOfRange = errors.New("out of range")

// Fibonacci memoizes F(n) in a map keyed by n. Entries are filled lazily and never evicted.
type Fibonacci struct {
	cache map[int]*big.Int
}

func NewFibonacci() *Fibonacci {
	return &Fibonacci{
		cache: map[int]*big.Int{
			0: big.NewInt(0),
			1: big.NewInt(1),
		},
	}
}

// Of returns F(n) for 0 <= n <= MaxFibonacci. The result is a copy the caller may modify.
func (f *Fibonacci) Of(n int) (*big.Int, error) {
	if n < 0 || n > MaxFibonacci {
		return nil, fmt.Errorf("%w: F(%d), want 0..%d", ErrOutOfRange, n, MaxFibonacci)
	}
	return new(big.Int).Set(f.of(n)), nil
}

func (f *Fibonacci) of(n int) *big.Int {
	if v, ok := f.cache[n]; ok {
		return v
	}
	v := new(big.Int).Add(f.of(n-1), f.of(n-2))
	f.cache[n] = v
	return v
}

// Cached reports how many values are memoized.
func (f *Fibonacci) Cached() int {
	return len(f.cache)
}
