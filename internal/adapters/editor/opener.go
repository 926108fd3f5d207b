package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"funknotes/internal/ports"
)

// ErrNoEditor is returned when no editor is configured or installed
var ErrNoEditor = errors.New("no editor found: set editor in config or $EDITOR")

// Opener implements ports.EditorOpener
type Opener struct {
	// Preferred is the configured editor command; it may carry arguments
	// such as "code --wait". Empty falls back to the environment.
	Preferred string
}

// Ensure Opener implements ports.EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener(preferred string) *Opener {
	return &Opener{Preferred: preferred}
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command builds the editor process for path, attached to the terminal.
// The TUI hands it to tea.ExecProcess.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := strings.Fields(o.findEditor())
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd, nil
}

// Compose opens the editor on a scratch file seeded with initial and
// returns what was saved, without the trailing newline
func (o *Opener) Compose(initial string) (string, error) {
	path, err := NewScratchFile(initial)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	if err := o.OpenFile(path); err != nil {
		return "", fmt.Errorf("failed to run editor: %w", err)
	}
	return ReadScratchFile(path)
}

// NewScratchFile writes initial to a temp file and returns its path
func NewScratchFile(initial string) (string, error) {
	f, err := os.CreateTemp("", "funknotes-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close scratch file: %w", err)
	}
	return f.Name(), nil
}

// ReadScratchFile returns the edited text with trailing newlines removed
func ReadScratchFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// fallbackEditors are tried on $PATH when nothing is configured
var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// findEditor picks the configured editor, then $EDITOR, then $VISUAL, then
// the first fallback found on $PATH
func (o *Opener) findEditor() string {
	for _, candidate := range []string{o.Preferred, os.Getenv("EDITOR"), os.Getenv("VISUAL")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	for _, name := range fallbackEditors {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
