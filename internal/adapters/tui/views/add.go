package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"funknotes/internal/adapters/tui/styles"
	"funknotes/internal/application/commands"
	"funknotes/internal/domain"
)

// AddKeyMap defines key bindings for the add view
type AddKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var AddKeys = AddKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// AddModel is a one-line form that adds an item to an object, or creates an
// object when no object is set
type AddModel struct {
	ViewState
	ws      *commands.Workspace
	project string
	object  string
	input   textinput.Model
}

// NewAddModel creates a new add view
func NewAddModel(ws *commands.Workspace, project string) *AddModel {
	input := textinput.New()
	input.CharLimit = domain.MaxTextLength
	input.Width = 60

	return &AddModel{
		ws:      ws,
		project: project,
		input:   input,
	}
}

// Reset prepares the form for object; empty object means a new object
func (m *AddModel) Reset(object string) {
	m.object = object
	m.ClearMessage()
	m.input.SetValue("")
	if object == "" {
		m.input.Placeholder = "Object name"
	} else {
		m.input.Placeholder = "New item"
	}
	m.input.Focus()
}

// Init initializes the add view
func (m *AddModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the add view
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
		return m, nil

	case ErrMsg:
		m.SetError(msg.Err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, AddKeys.Cancel):
			return m, switchTo(SwitchToBrowserMsg{})
		case key.Matches(msg, AddKeys.Submit):
			return m, m.submit(m.input.Value())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AddModel) submit(value string) tea.Cmd {
	ws, project, object := m.ws, m.project, m.object
	return func() tea.Msg {
		ctx := context.Background()
		if object == "" {
			res, err := commands.NewAddObjectCommand(ws, project, value).Execute(ctx)
			if err != nil {
				return ErrMsg{Err: err}
			}
			return SwitchToBrowserMsg{Message: res.Message}
		}

		res, err := commands.NewAddItemCommand(ws, project, object, value).Execute(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return SwitchToBrowserMsg{Message: fmt.Sprintf("Added item %d to %s", res.Index, res.Object)}
	}
}

// View renders the add view
func (m *AddModel) View() string {
	v := NewViewBuilder()
	if m.object == "" {
		v.Title("New object")
	} else {
		v.Title("Add item")
		v.Subtitle(m.object)
	}
	v.Line(styles.InputLabel.Render(m.input.Placeholder))
	v.Line(styles.InputFocused.Render(m.input.View()))
	v.Message(m.Message, m.MessageErr)
	v.Help(AddKeys.Submit, AddKeys.Cancel)
	return v.String()
}
