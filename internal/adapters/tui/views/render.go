package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"funknotes/internal/adapters/tui/styles"
)

// helpBar joins the enabled bindings into one "key desc · key desc" line
func helpBar(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderRow renders a list row, highlighted when selected
func RenderRow(text string, selected bool) string {
	if !selected {
		return "  " + text
	}
	return styles.NodeSelected.Render("> " + text)
}

// ViewBuilder collects the lines of a screen. Every view renders through it
// so titles, status messages and the key bar sit in the same places.
type ViewBuilder struct {
	lines []string
}

func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

func (v *ViewBuilder) add(lines ...string) *ViewBuilder {
	v.lines = append(v.lines, lines...)
	return v
}

func (v *ViewBuilder) Title(title string) *ViewBuilder {
	return v.add(styles.Title.Render(title))
}

// Subtitle is followed by a gap before the body
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	return v.add(styles.Subtitle.Render(subtitle), "")
}

func (v *ViewBuilder) Line(text string) *ViewBuilder {
	return v.add(text)
}

func (v *ViewBuilder) BlankLine() *ViewBuilder {
	return v.add("")
}

func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.add(styles.MutedText.Render(text))
}

// Message shows a status line; errors are red, anything else green
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	switch {
	case message == "":
		return v
	case isError:
		return v.add("", styles.ErrorMsg.Render(message))
	default:
		return v.add("", styles.Success.Render(message))
	}
}

// Help ends the screen with the key bar
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	return v.add("", helpBar(bindings))
}

func (v *ViewBuilder) String() string {
	return styles.App.Render(strings.Join(v.lines, "\n"))
}
