package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"funknotes/internal/adapters/editor"
	"funknotes/internal/adapters/tui/views"
	"funknotes/internal/application/commands"
	"funknotes/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewAdd
	ViewConfirm
	ViewSearch
	ViewHelp
)

// App is the main TUI application model
type App struct {
	ws     *commands.Workspace
	editor ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	add     *views.AddModel
	confirm *views.ConfirmModel
	search  *views.SearchModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application over project, or the primary project
// when project is empty. The workspace prompter should answer yes: the app
// asks its own questions before running destructive commands.
func NewApp(ws *commands.Workspace, project string, ed ports.EditorOpener) *App {
	return &App{
		ws:      ws,
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(ws, project),
		add:     views.NewAddModel(ws, project),
		confirm: views.NewConfirmModel(),
		search:  views.NewSearchModel(ws, project),
		help:    views.NewHelpModel(),
	}
}

// State returns the view being shown
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.Update(msg)
		a.add.Update(msg)
		a.confirm.Update(msg)
		a.search.Update(msg)
		a.help.Update(msg)
		return a, nil

	// View switching messages
	case views.SwitchToAddMsg:
		a.state = ViewAdd
		a.add.Reset(msg.Object)
		return a, a.add.Init()

	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetRequest(msg)
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		a.browser.SetMessage(msg.Message, false)
		return a, a.browser.Reload()

	case views.OpenObjectMsg:
		a.state = ViewBrowser
		return a, a.browser.Open(msg.Object)

	case views.ComposeMsg:
		return a, a.compose(msg.Object)

	case editorFinishedMsg:
		a.state = ViewBrowser
		return a, a.addComposed(msg)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct {
	object string
	path   string
	err    error
}

// compose runs the editor on a scratch file; the result comes back as an
// editorFinishedMsg once the terminal is restored
func (a *App) compose(object string) tea.Cmd {
	fail := func(err error) tea.Cmd {
		return func() tea.Msg { return views.ErrMsg{Err: err} }
	}
	if a.editor == nil {
		return fail(errors.New("no editor configured"))
	}

	path, err := editor.NewScratchFile("")
	if err != nil {
		return fail(err)
	}
	cmd, err := a.editor.Command(path)
	if err != nil {
		os.Remove(path)
		return fail(err)
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{object: object, path: path, err: err}
	})
}

func (a *App) addComposed(msg editorFinishedMsg) tea.Cmd {
	ws, project := a.ws, a.browser.Project()
	return func() tea.Msg {
		defer os.Remove(msg.path)
		if msg.err != nil {
			return views.ErrMsg{Err: fmt.Errorf("failed to run editor: %w", msg.err)}
		}

		text, err := editor.ReadScratchFile(msg.path)
		if err != nil {
			return views.ErrMsg{Err: err}
		}
		if strings.TrimSpace(text) == "" {
			return views.SwitchToBrowserMsg{Message: "Nothing written, no item added"}
		}

		res, err := commands.NewAddItemCommand(ws, project, msg.object, text).Execute(context.Background())
		if err != nil {
			return views.ErrMsg{Err: err}
		}
		return views.SwitchToBrowserMsg{Message: fmt.Sprintf("Added item %d to %s", res.Index, res.Object)}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewAdd:
		return a.add.View()
	case ViewConfirm:
		return a.confirm.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
