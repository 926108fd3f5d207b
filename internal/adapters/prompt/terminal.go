// Package prompt implements ports.Prompter for terminals and for callers
// that need a fixed answer.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"funknotes/internal/adapters/tui/styles"
	"funknotes/internal/ports"
)

// Terminal asks yes/no questions on a line-oriented terminal
type Terminal struct {
	reader      *bufio.Reader
	writer      io.Writer
	interactive bool
}

// Ensure Terminal implements ports.Prompter
var _ ports.Prompter = (*Terminal)(nil)

// Option configures a Terminal
type Option func(*Terminal)

// WithWriter sets where questions are printed (default os.Stdout)
func WithWriter(w io.Writer) Option {
	return func(t *Terminal) {
		t.writer = w
	}
}

// WithInteractive overrides terminal detection
func WithInteractive(interactive bool) Option {
	return func(t *Terminal) {
		t.interactive = interactive
	}
}

// NewTerminal creates a prompter reading answers from in. It is interactive
// when in is a terminal.
func NewTerminal(in io.Reader, opts ...Option) *Terminal {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	t := &Terminal{
		reader:      reader,
		writer:      os.Stdout,
		interactive: IsTerminal(in),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Reader returns the buffered reader so a caller reading lines from the
// same input does not lose buffered data.
func (t *Terminal) Reader() *bufio.Reader {
	return t.reader
}

// Ask prints question and reads a y/n answer. An empty answer takes the
// default. Without a terminal, or at end of input, the default is returned.
func (t *Terminal) Ask(question string, defaultYes bool) bool {
	if !t.interactive {
		return defaultYes
	}

	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	fmt.Fprintf(t.writer, "%s %s ", styles.Prompt.Render(question), hint)

	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.writer)
		return defaultYes
	}
	return ParseAnswer(line, defaultYes)
}

// ParseAnswer interprets a typed answer
func ParseAnswer(line string, defaultYes bool) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}

// IsTerminal reports whether r is a terminal file
func IsTerminal(r any) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Fixed answers every question the same way and records what was asked
type Fixed struct {
	Answer    bool
	Questions []string
}

// Ensure Fixed implements ports.Prompter
var _ ports.Prompter = (*Fixed)(nil)

// NewFixed creates a prompter that always answers answer
func NewFixed(answer bool) *Fixed {
	return &Fixed{Answer: answer}
}

// Ask records the question and returns the fixed answer
func (f *Fixed) Ask(question string, defaultYes bool) bool {
	f.Questions = append(f.Questions, question)
	return f.Answer
}
