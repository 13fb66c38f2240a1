package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InvalidNumberPrompt is printed when a number was expected but not given.
const InvalidNumberPrompt = "Please enter a valid number: "

// Prompter reads line-oriented answers from an input stream.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter returns a Prompter that reads from in and prompts on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Line prints prompt and returns the next input line without its newline.
// Returns io.EOF when the input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.next()
}

// Int prints prompt and reads an integer, re-prompting until one is given.
// Returns io.EOF when the input is exhausted first.
func (p *Prompter) Int(prompt string) (int, error) {
	fmt.Fprint(p.out, prompt)
	for {
		line, err := p.next()
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			return n, nil
		}
		fmt.Fprint(p.out, InvalidNumberPrompt)
	}
}

func (p *Prompter) next() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(p.scanner.Text(), "\r"), nil
}
