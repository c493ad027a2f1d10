package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxAttempts bounds re-prompts for one invalid value.
const MaxAttempts = 3

// ErrTooManyAttempts is returned after MaxAttempts invalid answers.
var ErrTooManyAttempts = errors.New("cli: too many invalid answers")

// Prompter reads answers line by line from an input stream.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// PositiveInt asks until a positive integer is entered, at most MaxAttempts times.
func (p *Prompter) PositiveInt(prompt string) (int, error) {
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter a positive integer.")
	}
	return 0, ErrTooManyAttempts
}

// Grid asks for the number of rows and columns.
func (p *Prompter) Grid() (rows, cols int, err error) {
	if rows, err = p.PositiveInt("Enter number of rows: "); err != nil {
		return 0, 0, err
	}
	if cols, err = p.PositiveInt("Enter number of columns: "); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// Stations reads "row,col" lines until an empty line or end of input.
// Malformed lines are reported and skipped; bounds are checked later.
func (p *Prompter) Stations() ([][2]int, error) {
	fmt.Fprintln(p.out, "Enter stations as row,col, one per line; empty line to finish.")
	var out [][2]int
	for {
		s, err := p.line("station> ")
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if s == "" {
			return out, nil
		}
		rc, err := ParseStation(s)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid station:", err)
			continue
		}
		out = append(out, rc)
	}
}
