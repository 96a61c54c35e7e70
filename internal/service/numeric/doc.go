// Package numeric holds the stateless number utilities behind the exercise commands:
// memoized Fibonacci, primality and the sieve, median and mode, temperature conversion
// and rectangle area. Nothing here reads input or prints.
package numeric
