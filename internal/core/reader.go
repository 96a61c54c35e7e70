package core

// LineReader blocks until one line of console input is available.
// It returns ErrEndOfInput once the input stream is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}
