package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_Ask(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"anything else declines", "maybe\n", true, false},
		{"empty takes default no", "\n", false, false},
		{"empty takes default yes", "\n", true, true},
		{"eof takes default no", "", false, false},
		{"eof takes default yes", "", true, true},
		{"answer without newline", "y", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewTerminal(strings.NewReader(tt.input), WithWriter(&out), WithInteractive(true))

			assert.Equal(t, tt.want, p.Ask("Delete it?", tt.defaultYes))
			assert.Contains(t, out.String(), "Delete it?")
		})
	}
}

func TestTerminal_HintShowsDefault(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminal(strings.NewReader("\n\n"), WithWriter(&out), WithInteractive(true))

	p.Ask("Create?", true)
	assert.Contains(t, out.String(), "Y/n")

	out.Reset()
	p.Ask("Delete?", false)
	assert.Contains(t, out.String(), "y/N")
}

func TestTerminal_NonInteractiveNeverReads(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("y\n")
	p := NewTerminal(in, WithWriter(&out))

	assert.False(t, p.Ask("Delete?", false))
	assert.True(t, p.Ask("Create?", true))
	assert.Empty(t, out.String())

	line, err := p.Reader().ReadString('\n')
	assert.NoError(t, err)
	assert.Equal(t, "y\n", line)
}

func TestFixed(t *testing.T) {
	p := NewFixed(false)
	assert.False(t, p.Ask("Delete?", true))
	assert.Equal(t, []string{"Delete?"}, p.Questions)

	assert.True(t, NewFixed(true).Ask("Delete?", false))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(strings.NewReader("")))
	assert.False(t, IsTerminal(nil))
}
