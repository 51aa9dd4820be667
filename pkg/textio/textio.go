// Package textio holds the small amount of input plumbing shared by the
// utilities: opening files with the conventional "-" meaning stdin, line
// iteration, and file discovery for the recursive tools.
package textio

import (
	"bufio"
	"io"
	"os"
)

// Stdin is the conventional filename for standard input.
const Stdin = "-"

// Open opens name for reading, treating "-" as standard input. The caller
// owns the returned closer; closing the stdin wrapper is a no-op.
func Open(name string) (io.ReadCloser, error) {
	if name == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// NewScanner returns a line scanner with the buffer raised to 1MB, so a
// long input line hits the same cap no matter which tool reads it.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}

// EachLine calls fn for every line of r with the trailing newline removed.
// Iteration stops at the first error from fn.
func EachLine(r io.Reader, fn func(line string) error) error {
	scanner := NewScanner(r)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
