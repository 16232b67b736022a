// Package ui provides line-oriented console input and output.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNotNumber reports console input that is not an integer.
var ErrNotNumber = errors.New("input is not a number")

// Console reads whitespace-delimited integers from a reader and writes game
// text to a writer.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a console over the given reader and writer.
func NewConsole(in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{in: scanner, out: out}
}

// Println writes a line of game text.
func (c *Console) Println(line string) {
	fmt.Fprintln(c.out, line)
}

// Printf writes formatted game text.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// ReadInt prints the prompt and reads the next whitespace-delimited integer.
// A non-numeric token is reported as a wrapped ErrNotNumber; exhausted input
// is reported as io.EOF.
func (c *Console) ReadInt(prompt string) (int, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	n, err := strconv.Atoi(c.in.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, c.in.Text())
	}
	return n, nil
}
