package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"funknotes/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, switchTo(SwitchToBrowserMsg{})
		}
	}

	return m, nil
}

type helpSection struct {
	heading string
	rows    [][2]string
}

var helpSections = []helpSection{
	{"Navigation", [][2]string{
		{"j k ↑ ↓", "Move up/down"},
		{"enter l →", "Open object"},
		{"esc h ←", "Back to objects"},
	}},
	{"Objects and items", [][2]string{
		{"n", "Create object"},
		{"a", "Add item to object"},
		{"e", "Write item in $EDITOR"},
		{"d", "Delete object or item"},
		{"c", "Copy item text"},
	}},
	{"Other", [][2]string{
		{"/", "Search"},
		{"r", "Reload from disk"},
		{"?", "Toggle help"},
		{"q ctrl+c", "Quit"},
	}},
}

// View renders the help view
func (m *HelpModel) View() string {
	v := NewViewBuilder().
		Title("funknotes").
		Subtitle("Projects, objects and timestamped items")

	for _, sec := range helpSections {
		v.Line(styles.InputLabel.Render(sec.heading))
		for _, row := range sec.rows {
			v.Line(fmt.Sprintf("  %s%s",
				styles.HelpKey.Render(fmt.Sprintf("%-14s", row[0])),
				styles.HelpDesc.Render(row[1])))
		}
		v.BlankLine()
	}

	return v.Help(HelpKeys.Close).String()
}
