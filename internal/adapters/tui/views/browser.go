package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"funknotes/internal/adapters/tui/styles"
	"funknotes/internal/application/commands"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Back    key.Binding
	New     key.Binding
	Add     key.Binding
	Compose key.Binding
	Delete  key.Binding
	Copy    key.Binding
	Search  key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter/l", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("h", "left", "esc"),
		key.WithHelp("h/esc", "back"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new object"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add item"),
	),
	Compose: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "compose in editor"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// CopyToClipboard writes text to the system clipboard
var CopyToClipboard = clipboard.WriteAll

type objectsLoadedMsg struct {
	listing *commands.ObjectListing
}

type itemsLoadedMsg struct {
	listing *commands.ItemListing
}

// BrowserModel browses the objects of one project and the items of one object
type BrowserModel struct {
	ViewState
	ws      *commands.Workspace
	project string // empty means the primary project

	objects *commands.ObjectListing
	items   *commands.ItemListing // non-nil while an object is open
	window  *Window
}

// NewBrowserModel creates a browser over project, or the primary project
// when project is empty
func NewBrowserModel(ws *commands.Workspace, project string) *BrowserModel {
	return &BrowserModel{
		ws:      ws,
		project: project,
		window:  NewWindow(15),
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadObjects
}

// Reload reloads whatever level is shown
func (m *BrowserModel) Reload() tea.Cmd {
	if m.items != nil {
		return m.loadItems(m.items.Object)
	}
	return m.loadObjects
}

// Open shows the items of object
func (m *BrowserModel) Open(object string) tea.Cmd {
	return m.loadItems(object)
}

// CurrentObject returns the open object, or the selected one at the top level
func (m *BrowserModel) CurrentObject() string {
	if m.items != nil {
		return m.items.Object
	}
	if m.objects != nil && len(m.objects.Objects) > 0 {
		return m.objects.Objects[m.window.Cursor()].Name
	}
	return ""
}

// Project returns the project override
func (m *BrowserModel) Project() string {
	return m.project
}

func (m *BrowserModel) loadObjects() tea.Msg {
	listing, err := commands.NewListObjectsCommand(m.ws, m.project).Execute(context.Background())
	if err != nil {
		return ErrMsg{Err: err}
	}
	return objectsLoadedMsg{listing: listing}
}

func (m *BrowserModel) loadItems(object string) tea.Cmd {
	return func() tea.Msg {
		listing, err := commands.NewListItemsCommand(m.ws, m.project, object).Execute(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return itemsLoadedMsg{listing: listing}
	}
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.window.SetSize(m.listHeight(8))
		return m, nil

	case objectsLoadedMsg:
		selected := m.selectedObjectName()
		m.objects = msg.listing
		m.items = nil
		m.window.SetTotal(len(msg.listing.Objects))
		m.selectObject(selected)
		return m, nil

	case itemsLoadedMsg:
		if m.items == nil || m.items.Object != msg.listing.Object {
			m.window.SetCursor(0)
		}
		m.items = msg.listing
		m.window.SetTotal(len(msg.listing.Items))
		return m, nil

	case ErrMsg:
		m.SetError(msg.Err)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BrowserKeys.Up):
		m.window.Up()

	case key.Matches(msg, BrowserKeys.Down):
		m.window.Down()

	case key.Matches(msg, BrowserKeys.Open):
		if m.items == nil {
			if name := m.CurrentObject(); name != "" {
				return m.loadItems(name)
			}
		}

	case key.Matches(msg, BrowserKeys.Back):
		if m.items != nil {
			return m.loadObjects
		}

	case key.Matches(msg, BrowserKeys.New):
		return switchTo(SwitchToAddMsg{})

	case key.Matches(msg, BrowserKeys.Add):
		if name := m.CurrentObject(); name != "" {
			return switchTo(SwitchToAddMsg{Object: name})
		}
		m.SetMessage("No object selected, press n to create one", true)

	case key.Matches(msg, BrowserKeys.Compose):
		if name := m.CurrentObject(); name != "" {
			return switchTo(ComposeMsg{Object: name})
		}
		m.SetMessage("No object selected, press n to create one", true)

	case key.Matches(msg, BrowserKeys.Delete):
		return m.confirmDelete()

	case key.Matches(msg, BrowserKeys.Copy):
		m.copySelected()

	case key.Matches(msg, BrowserKeys.Search):
		return switchTo(SwitchToSearchMsg{})

	case key.Matches(msg, BrowserKeys.Reload):
		return m.Reload()

	case key.Matches(msg, BrowserKeys.Help):
		return switchTo(SwitchToHelpMsg{})
	}
	return nil
}

func (m *BrowserModel) confirmDelete() tea.Cmd {
	ws, project := m.ws, m.project
	if m.items != nil {
		if len(m.items.Items) == 0 {
			return nil
		}
		object := m.items.Object
		item := m.items.Items[m.window.Cursor()]
		return switchTo(SwitchToConfirmMsg{
			Title:  "Delete item?",
			Target: fmt.Sprintf("%s #%d: %s", object, item.Index, item.Text),
			Action: func() (string, error) {
				res, err := commands.NewDeleteItemCommand(ws, project, object, item.Index).Execute(context.Background())
				if err != nil {
					return "", err
				}
				return res.Message, nil
			},
		})
	}

	object := m.CurrentObject()
	if object == "" {
		return nil
	}
	return switchTo(SwitchToConfirmMsg{
		Title:  "Delete object and all its items?",
		Target: object,
		Action: func() (string, error) {
			res, err := commands.NewDeleteObjectCommand(ws, project, object).Execute(context.Background())
			if err != nil {
				return "", err
			}
			return res.Message, nil
		},
	})
}

func (m *BrowserModel) copySelected() {
	if m.items == nil || len(m.items.Items) == 0 {
		return
	}
	item := m.items.Items[m.window.Cursor()]
	if err := CopyToClipboard(item.Text); err != nil {
		m.SetMessage(fmt.Sprintf("Failed to copy: %v", err), true)
		return
	}
	m.SetMessage(fmt.Sprintf("Copied item %d to clipboard", item.Index), false)
}

func (m *BrowserModel) selectedObjectName() string {
	if m.objects == nil || len(m.objects.Objects) == 0 {
		return ""
	}
	if m.items != nil {
		return m.items.Object
	}
	return m.objects.Objects[m.window.Cursor()].Name
}

func (m *BrowserModel) selectObject(name string) {
	for i, obj := range m.objects.Objects {
		if obj.Name == name {
			m.window.SetCursor(i)
			return
		}
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	v := NewViewBuilder()

	switch {
	case m.items != nil:
		v.Title(m.items.Object)
		v.Subtitle(fmt.Sprintf("project %s", m.items.Project))
		if len(m.items.Items) == 0 {
			v.Muted("(empty)")
		}
		start, end := m.window.Visible()
		for i := start; i < end; i++ {
			item := m.items.Items[i]
			row := fmt.Sprintf("%s %s %s",
				styles.NodeIndex.Render(fmt.Sprintf("%d.", item.Index)),
				styles.Timestamp.Render("["+item.Timestamp+"]"),
				firstLine(item.Text))
			v.Line(RenderRow(row, i == m.window.Cursor()))
		}

	case m.objects != nil:
		v.Title(m.objects.Project)
		v.Subtitle(fmt.Sprintf("project [%d]", m.objects.Index))
		if len(m.objects.Objects) == 0 {
			v.Muted("(no objects)")
		}
		start, end := m.window.Visible()
		for i := start; i < end; i++ {
			obj := m.objects.Objects[i]
			row := fmt.Sprintf("%s %s",
				styles.NodeObject.Render(obj.Name),
				styles.MutedText.Render(fmt.Sprintf("(%d items)", obj.Count)))
			v.Line(RenderRow(row, i == m.window.Cursor()))
		}

	default:
		v.Title("funknotes")
	}

	if pos := m.window.Position(); pos != "" {
		v.Muted(pos)
	}
	v.Message(m.Message, m.MessageErr)

	if m.items != nil {
		v.Help(BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.Back, BrowserKeys.Add,
			BrowserKeys.Delete, BrowserKeys.Copy, BrowserKeys.Help, BrowserKeys.Quit)
	} else {
		v.Help(BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.Open, BrowserKeys.New,
			BrowserKeys.Add, BrowserKeys.Delete, BrowserKeys.Search, BrowserKeys.Help, BrowserKeys.Quit)
	}
	return v.String()
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i] + " …"
	}
	return text
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
