package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funknotes/internal/adapters/codec"
	"funknotes/internal/adapters/filesystem"
	"funknotes/internal/adapters/prompt"
	"funknotes/internal/adapters/tui/views"
	"funknotes/internal/application/commands"
	"funknotes/internal/domain"
)

// driver feeds messages to the app and runs the commands it returns
// synchronously, the way the bubbletea runtime would
type driver struct {
	t    *testing.T
	app  *App
	dir  *filesystem.Directory
	quit bool
}

func newDriver(t *testing.T, seed func(ws *commands.Workspace)) *driver {
	t.Helper()

	home := t.TempDir()
	state := filesystem.NewStateStore(filepath.Join(home, filesystem.StateFileName))
	dir := filesystem.NewDirectory(filepath.Join(home, filesystem.ProjectsDirName), codec.JSON{}, state, nil)
	ws := commands.NewWorkspace(dir, state, prompt.NewFixed(true))
	ws.Clock = domain.FixedClock{T: time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)}
	if seed != nil {
		seed(ws)
	}

	d := &driver{t: t, app: NewApp(ws, "", nil), dir: dir}
	d.run(d.app.Init())
	return d
}

func seedTodo(ws *commands.Workspace) {
	ctx := context.Background()
	if _, err := commands.NewNewProjectCommand(ws, "work").Execute(ctx); err != nil {
		panic(err)
	}
	if _, err := commands.NewSetPrimaryCommand(ws, "work").Execute(ctx); err != nil {
		panic(err)
	}
	for _, text := range []string{"buy milk", "call mom"} {
		if _, err := commands.NewAddItemCommand(ws, "", "todo", text).Execute(ctx); err != nil {
			panic(err)
		}
	}
}

func (d *driver) send(msg tea.Msg) {
	_, cmd := d.app.Update(msg)
	d.run(cmd)
}

func (d *driver) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.QuitMsg:
		d.quit = true
		return
	case tea.BatchMsg:
		for _, c := range msg {
			d.run(c)
		}
		return
	}
	// cursor blinking is timer driven
	if strings.HasPrefix(fmt.Sprintf("%T", msg), "cursor.") {
		return
	}
	d.send(msg)
}

func (d *driver) press(keys ...string) {
	for _, k := range keys {
		switch k {
		case "enter":
			d.send(tea.KeyMsg{Type: tea.KeyEnter})
		case "esc":
			d.send(tea.KeyMsg{Type: tea.KeyEsc})
		default:
			d.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
}

// typeText enters text into the focused input. The blink command the input
// returns is dropped.
func (d *driver) typeText(text string) {
	d.app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func (d *driver) object(name string) *domain.Object {
	d.t.Helper()
	_, p, err := d.dir.Resolve("work")
	require.NoError(d.t, err)
	return p.FindObject(name)
}

func texts(obj *domain.Object) []string {
	var out []string
	for _, item := range obj.ItemsInOrder() {
		out = append(out, item.Text)
	}
	return out
}

func TestApp_BrowseObjectsAndItems(t *testing.T) {
	d := newDriver(t, seedTodo)

	view := d.app.View()
	assert.Contains(t, view, "work")
	assert.Contains(t, view, "todo")
	assert.Contains(t, view, "(2 items)")

	d.press("enter")
	view = d.app.View()
	assert.Contains(t, view, "buy milk")
	assert.Contains(t, view, "call mom")
	assert.Contains(t, view, "[2024-03-01 09:30:00]")

	d.press("h")
	assert.Contains(t, d.app.View(), "(2 items)")
	assert.NotContains(t, d.app.View(), "buy milk")
}

func TestApp_NoPrimaryProject(t *testing.T) {
	d := newDriver(t, nil)

	assert.Contains(t, d.app.View(), "no primary project set")
}

func TestApp_AddItem(t *testing.T) {
	d := newDriver(t, seedTodo)

	d.press("a")
	require.Equal(t, ViewAdd, d.app.State())

	d.typeText("water plants")
	d.press("enter")

	assert.Equal(t, ViewBrowser, d.app.State())
	assert.Contains(t, d.app.View(), "Added item 3 to todo")
	assert.Equal(t, []string{"buy milk", "call mom", "water plants"}, texts(d.object("todo")))
}

func TestApp_AddEmptyItemStaysInForm(t *testing.T) {
	d := newDriver(t, seedTodo)

	d.press("a", "enter")

	assert.Equal(t, ViewAdd, d.app.State())
	assert.Contains(t, d.app.View(), "text is required")
	assert.Len(t, d.object("todo").Items, 2)

	d.press("esc")
	assert.Equal(t, ViewBrowser, d.app.State())
}

func TestApp_NewObject(t *testing.T) {
	d := newDriver(t, seedTodo)

	d.press("n")
	d.typeText("ideas")
	d.press("enter")

	assert.Equal(t, ViewBrowser, d.app.State())
	require.NotNil(t, d.object("ideas"))
	assert.Contains(t, d.app.View(), "ideas")
}

func TestApp_DeleteItemAsksFirst(t *testing.T) {
	d := newDriver(t, seedTodo)

	d.press("enter", "j", "d")
	require.Equal(t, ViewConfirm, d.app.State())
	assert.Contains(t, d.app.View(), "call mom")

	d.press("n")
	assert.Equal(t, ViewBrowser, d.app.State())
	assert.Contains(t, d.app.View(), "Cancelled")
	assert.Len(t, d.object("todo").Items, 2)

	d.press("d", "y")
	assert.Equal(t, ViewBrowser, d.app.State())
	assert.Equal(t, []string{"buy milk"}, texts(d.object("todo")))
	assert.NotContains(t, d.app.View(), "call mom")
}

func TestApp_DeleteObject(t *testing.T) {
	d := newDriver(t, seedTodo)

	d.press("d")
	require.Equal(t, ViewConfirm, d.app.State())
	d.press("y")

	assert.Nil(t, d.object("todo"))
	assert.Contains(t, d.app.View(), "(no objects)")
}

func TestApp_SearchAndOpen(t *testing.T) {
	d := newDriver(t, seedTodo)

	d.press("/")
	require.Equal(t, ViewSearch, d.app.State())

	d.typeText("MILK")
	d.press("enter")
	view := d.app.View()
	assert.Contains(t, view, "buy milk")
	assert.NotContains(t, view, "call mom")

	d.press("enter")
	assert.Equal(t, ViewBrowser, d.app.State())
	assert.Contains(t, d.app.View(), "call mom")
}

func TestApp_SearchNoMatches(t *testing.T) {
	d := newDriver(t, seedTodo)

	d.press("/")
	d.typeText("bread")
	d.press("enter")

	assert.Equal(t, ViewSearch, d.app.State())
	assert.Contains(t, d.app.View(), "No matches found")
}

func TestApp_CopyItem(t *testing.T) {
	var copied string
	old := views.CopyToClipboard
	views.CopyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { views.CopyToClipboard = old })

	d := newDriver(t, seedTodo)
	d.press("enter", "j", "c")

	assert.Equal(t, "call mom", copied)
	assert.Contains(t, d.app.View(), "Copied item 2 to clipboard")
}

func TestApp_CopyFailure(t *testing.T) {
	old := views.CopyToClipboard
	views.CopyToClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { views.CopyToClipboard = old })

	d := newDriver(t, seedTodo)
	d.press("enter", "c")

	assert.Contains(t, d.app.View(), "Failed to copy: no clipboard")
}

func TestApp_ComposedItemIsAdded(t *testing.T) {
	d := newDriver(t, seedTodo)

	path := filepath.Join(t.TempDir(), "scratch.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0644))

	d.send(editorFinishedMsg{object: "todo", path: path})

	assert.Equal(t, []string{"buy milk", "call mom", "line one\nline two"}, texts(d.object("todo")))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestApp_ComposedEmptyItemIsSkipped(t *testing.T) {
	d := newDriver(t, seedTodo)

	path := filepath.Join(t.TempDir(), "scratch.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0644))

	d.send(editorFinishedMsg{object: "todo", path: path})

	assert.Len(t, d.object("todo").Items, 2)
	assert.Contains(t, d.app.View(), "Nothing written")
}

func TestApp_ComposeWithoutEditor(t *testing.T) {
	d := newDriver(t, seedTodo)

	d.press("e")

	assert.Contains(t, d.app.View(), "no editor configured")
}

func TestApp_HelpAndQuit(t *testing.T) {
	d := newDriver(t, seedTodo)

	d.press("?")
	assert.Equal(t, ViewHelp, d.app.State())
	assert.Contains(t, d.app.View(), "Delete object or item")

	d.press("esc")
	assert.Equal(t, ViewBrowser, d.app.State())

	d.press("q")
	assert.True(t, d.quit)
}
