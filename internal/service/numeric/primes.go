package numeric

// IsPrime is a trial division test over odd divisors up to the square root.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Sieve returns s where s[i] reports whether i is prime, for 0 <= i <= n.
func Sieve(n int) []bool {
	if n < 0 {
		return nil
	}
	s := make([]bool, n+1)
	for i := 2; i <= n; i++ {
		s[i] = true
	}
	for i := 2; i*i <= n; i++ {
		if !s[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			s[j] = false
		}
	}
	return s
}

// Primes lists the primes up to and including n.
func Primes(n int) []int {
	var out []int
	for i, prime := range Sieve(n) {
		if prime {
			out = append(out, i)
		}
	}
	return out
}

// NthPrime returns the n-th prime, counting 2 as the first. n < 1 yields 0.
func NthPrime(n int) uint64 {
	if n < 1 {
		return 0
	}
	if n == 1 {
		return 2
	}
	count := 1
	for c := uint64(3); ; c += 2 {
		if IsPrime(c) {
			count++
			if count == n {
				return c
			}
		}
	}
}

// PrimeFactors returns the prime factorization of n in ascending order, with repeats.
func PrimeFactors(n uint64) []uint64 {
	var factors []uint64
	for n%2 == 0 && n > 1 {
		factors = append(factors, 2)
		n /= 2
	}
	for d := uint64(3); d <= n/d; d += 2 {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}
