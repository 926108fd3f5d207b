package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"funknotes/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for the confirmation view
type ConfirmKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N", "esc", "q"),
		key.WithHelp("n/esc", "no"),
	),
}

// ConfirmModel asks a yes/no question before a destructive action
type ConfirmModel struct {
	ViewState
	request SwitchToConfirmMsg
	running bool
}

// NewConfirmModel creates a new confirmation view
func NewConfirmModel() *ConfirmModel {
	return &ConfirmModel{}
}

// SetRequest replaces the question being asked
func (m *ConfirmModel) SetRequest(req SwitchToConfirmMsg) {
	m.request = req
	m.running = false
	m.ClearMessage()
}

// Init initializes the confirmation view
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ErrMsg:
		m.running = false
		m.SetError(msg.Err)
		return m, nil

	case tea.KeyMsg:
		if m.running {
			return m, nil
		}
		switch {
		case key.Matches(msg, ConfirmKeys.Yes):
			if m.request.Action == nil {
				return m, switchTo(SwitchToBrowserMsg{})
			}
			m.running = true
			action := m.request.Action
			return m, func() tea.Msg {
				message, err := action()
				if err != nil {
					return ErrMsg{Err: err}
				}
				return SwitchToBrowserMsg{Message: message}
			}

		case key.Matches(msg, ConfirmKeys.No):
			return m, switchTo(SwitchToBrowserMsg{Message: "Cancelled"})
		}
	}

	return m, nil
}

// View renders the confirmation view
func (m *ConfirmModel) View() string {
	v := NewViewBuilder()
	v.Title(m.request.Title)
	v.Line(styles.WarningMsg.Render(m.request.Target))
	v.BlankLine()
	v.Line(styles.Prompt.Render("This cannot be undone."))
	v.Message(m.Message, m.MessageErr)
	if m.MessageErr {
		v.Help(ConfirmKeys.No)
	} else {
		v.Help(ConfirmKeys.Yes, ConfirmKeys.No)
	}
	return v.String()
}
