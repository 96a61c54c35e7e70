package euler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/sandevgo/roster/internal/service/numeric"
)

var (
	ErrUnknownProblem = errors.New("unknown problem")
	ErrBadDigits      = errors.New("digits input invalid")
)

type Problem struct {
	ID    int
	Title string
	// Solve returns the answer; problem 8 reads its digits from the input string.
	Solve func(input string) (int64, error)
}

func Problems() []Problem {
	return []Problem{
		{ID: 1, Title: "Multiples of 3 or 5", Solve: func(string) (int64, error) { return SumMultiples(1000, 3, 5), nil }},
		{ID: 2, Title: "Even Fibonacci numbers", Solve: func(string) (int64, error) { return EvenFibonacciSum(4_000_000), nil }},
		{ID: 3, Title: "Largest prime factor", Solve: func(string) (int64, error) { return int64(LargestPrimeFactor(600_851_475_143)), nil }},
		{ID: 4, Title: "Largest palindrome product", Solve: func(string) (int64, error) { return LargestPalindromeProduct(100, 999), nil }},
		{ID: 5, Title: "Smallest multiple", Solve: func(string) (int64, error) { return SmallestMultiple(20), nil }},
		{ID: 6, Title: "Sum square difference", Solve: func(string) (int64, error) { return SumSquareDifference(100), nil }},
		{ID: 7, Title: "10001st prime", Solve: func(string) (int64, error) { return int64(numeric.NthPrime(10001)), nil }},
		{ID: 8, Title: "Largest product in a series", Solve: func(digits string) (int64, error) {
			p, _, err := LargestProduct(digits, 13)
			return p, err
		}},
	}
}

func Find(id int) (Problem, error) {
	for _, p := range Problems() {
		if p.ID == id {
			return p, nil
		}
	}
	return Problem{}, fmt.Errorf("%w: %d", ErrUnknownProblem, id)
}

// SumMultiples sums the naturals below limit divisible by any of divisors.
func SumMultiples(limit int, divisors ...int) int64 {
	var sum int64
	for i := 1; i < limit; i++ {
		for _, d := range divisors {
			if d != 0 && i%d == 0 {
				sum += int64(i)
				break
			}
		}
	}
	return sum
}

// EvenFibonacciSum sums the even Fibonacci terms not exceeding limit.
func EvenFibonacciSum(limit int64) int64 {
	fib := numeric.NewFibonacci()
	var sum int64
	for n := 1; ; n++ {
		f, err := fib.Of(n)
		if err != nil || !f.IsInt64() || f.Int64() > limit {
			return sum
		}
		if f.Bit(0) == 0 {
			sum += f.Int64()
		}
	}
}

func LargestPrimeFactor(n uint64) uint64 {
	factors := numeric.PrimeFactors(n)
	if len(factors) == 0 {
		return 0
	}
	return factors[len(factors)-1]
}

func IsPalindrome(s string) bool {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		if r[i] != r[j] {
			return false
		}
	}
	return true
}

// LargestPalindromeProduct searches products p*q with lo <= p, q <= hi.
func LargestPalindromeProduct(lo, hi int64) int64 {
	var best int64
	for p := hi; p >= lo; p-- {
		if p*hi <= best {
			break
		}
		for q := hi; q >= p; q-- {
			x := p * q
			if x <= best {
				break
			}
			if IsPalindrome(strconv.FormatInt(x, 10)) {
				best = x
			}
		}
	}
	return best
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// SmallestMultiple is the least common multiple of 1..n.
func SmallestMultiple(n int64) int64 {
	if n < 1 {
		return 0
	}
	m := int64(1)
	for i := int64(2); i <= n; i++ {
		m = m / gcd(m, i) * i
	}
	return m
}

func SumSquareDifference(n int64) int64 {
	var sum, squares int64
	for x := int64(1); x <= n; x++ {
		sum += x
		squares += x * x
	}
	return sum*sum - squares
}

// LargestProduct finds the window of adjacent digits with the greatest product.
// Whitespace in digits is ignored; any other non-digit is an error.
func LargestProduct(digits string, window int) (int64, string, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, digits)

	if window < 1 || len(clean) < window {
		return 0, "", fmt.Errorf("%w: need at least %d digits, got %d", ErrBadDigits, max(window, 1), len(clean))
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return 0, "", fmt.Errorf("%w: %q is not a digit", ErrBadDigits, r)
		}
	}

	var best int64 = -1
	var bestRun string
	for i := 0; i+window <= len(clean); i++ {
		run := clean[i : i+window]
		p := int64(1)
		for _, r := range run {
			p *= int64(r - '0')
		}
		if p > best {
			best, bestRun = p, run
		}
	}
	return best, bestRun, nil
}
