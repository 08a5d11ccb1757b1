// Package interaction provides the prompts used to ask the user whether an
// existing file should be skipped or replaced.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter asks a question and returns the trimmed answer.
type Prompter interface {
	Prompt(question, marker string) (string, error)
}

// New returns a HuhPrompter when the terminal is interactive and a
// LinePrompter reading from in otherwise.
func New(in io.Reader, out io.Writer, interactive bool) Prompter {
	if interactive {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}

var runInputPrompt = func(title, marker string, input *string) error {
	return huh.NewInput().
		Title(title).
		Prompt(marker).
		Value(input).
		Run()
}

// HuhPrompter prompts with the huh TUI library.
type HuhPrompter struct{}

func (HuhPrompter) Prompt(question, marker string) (string, error) {
	var input string
	if err := runInputPrompt(question, marker, &input); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// LinePrompter writes the question to an io.Writer and reads one line per
// answer. It works with piped input.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter creates a LinePrompter. The reader is buffered once so
// consecutive prompts consume consecutive lines.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

// Prompt returns io.EOF once the input is exhausted.
func (p *LinePrompter) Prompt(question, marker string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s %s", question, marker)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			_, _ = fmt.Fprintln(p.out)
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}
