package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"funknotes/internal/adapters/tui/styles"
	"funknotes/internal/application/commands"
	"funknotes/internal/domain"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Copy   key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search/open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// OpenObjectMsg asks the browser to open an object
type OpenObjectMsg struct {
	Object string
}

type searchResultsMsg struct {
	query   string
	results *commands.SearchResults
}

// SearchModel runs keyword searches over the browsed project
type SearchModel struct {
	ViewState
	ws      *commands.Workspace
	project string
	input   textinput.Model
	query   string // query that produced results
	results []domain.SearchResult
	scope   string
	window  *Window
}

// NewSearchModel creates a new search view model
func NewSearchModel(ws *commands.Workspace, project string) *SearchModel {
	input := textinput.New()
	input.Placeholder = "keywords, or an object name followed by keywords"
	input.Width = 60
	input.Focus()

	return &SearchModel{
		ws:      ws,
		project: project,
		input:   input,
		window:  NewWindow(10),
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset resets the search view
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.input.Focus()
	m.query = ""
	m.results = nil
	m.scope = ""
	m.window.SetTotal(0)
	m.ClearMessage()
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.window.SetSize(m.listHeight(10))
		return m, nil

	case searchResultsMsg:
		m.query = msg.query
		m.results = msg.results.Matches
		m.scope = msg.results.Object
		m.window.SetTotal(len(m.results))
		m.window.SetCursor(0)
		if len(m.results) == 0 {
			m.SetMessage("No matches found", false)
		}
		return m, nil

	case ErrMsg:
		m.SetError(msg.Err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, switchTo(SwitchToBrowserMsg{})

		case key.Matches(msg, SearchKeys.Up):
			m.window.Up()
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			m.window.Down()
			return m, nil

		case key.Matches(msg, SearchKeys.Copy):
			if r, ok := m.selected(); ok {
				if err := CopyToClipboard(r.Item.Text); err != nil {
					m.SetMessage(fmt.Sprintf("Failed to copy: %v", err), true)
				} else {
					m.SetMessage("Copied to clipboard", false)
				}
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			query := strings.TrimSpace(m.input.Value())
			if r, ok := m.selected(); ok && query == m.query {
				return m, switchTo(OpenObjectMsg{Object: r.Object})
			}
			m.ClearMessage()
			return m, m.search(query)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SearchModel) selected() (domain.SearchResult, bool) {
	if len(m.results) == 0 {
		return domain.SearchResult{}, false
	}
	return m.results[m.window.Cursor()], true
}

func (m *SearchModel) search(query string) tea.Cmd {
	ws, project := m.ws, m.project
	return func() tea.Msg {
		cmd := commands.NewSearchCommand(ws, project, "", strings.Fields(query)...)
		cmd.DetectScope = true
		results, err := cmd.Execute(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return searchResultsMsg{query: query, results: results}
	}
}

// View renders the search view
func (m *SearchModel) View() string {
	v := NewViewBuilder()
	v.Title("Search")
	v.Line(styles.InputFocused.Render(m.input.View()))
	v.BlankLine()

	if m.scope != "" {
		v.Muted("in " + m.scope)
	}
	start, end := m.window.Visible()
	for i := start; i < end; i++ {
		r := m.results[i]
		row := fmt.Sprintf("%s %s %s",
			styles.NodeObject.Render(r.Object+":"),
			styles.Timestamp.Render("["+r.Item.Timestamp+"]"),
			styles.SearchMatch.Render(firstLine(r.Item.Text)))
		v.Line(RenderRow(row, i == m.window.Cursor()))
	}
	if pos := m.window.Position(); pos != "" {
		v.Muted(pos)
	}

	v.Message(m.Message, m.MessageErr)
	v.Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Copy, SearchKeys.Cancel)
	return v.String()
}
