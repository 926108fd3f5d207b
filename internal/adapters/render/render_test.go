package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"funknotes/internal/application/commands"
	"funknotes/internal/domain"
)

func TestProjects(t *testing.T) {
	var buf bytes.Buffer
	Projects(&buf, []domain.ProjectSummary{
		{Index: 1, Name: "work", IsPrimary: true},
		{Index: 2, Name: "home"},
	})

	assert.Contains(t, buf.String(), "[1] work (PRIMARY)")
	assert.Contains(t, buf.String(), "[2] home\n")

	buf.Reset()
	Projects(&buf, nil)
	assert.Contains(t, buf.String(), "No projects found")
}

func TestObjects(t *testing.T) {
	var buf bytes.Buffer
	Objects(&buf, &commands.ObjectListing{
		Project: "work",
		Objects: []commands.ObjectSummary{{Name: "todo", Count: 3}},
	})

	assert.Contains(t, buf.String(), "=== Objects in 'work' ===")
	assert.Contains(t, buf.String(), "• todo (3 items)")
}

func TestItems(t *testing.T) {
	var buf bytes.Buffer
	Items(&buf, &commands.ItemListing{
		Object: "todo",
		Items: []commands.NumberedItem{
			{Index: 1, Item: domain.Item{Timestamp: "2024-01-01 10:00:00", Text: "buy milk"}},
		},
	})

	assert.Contains(t, buf.String(), "=== todo ===")
	assert.Contains(t, buf.String(), "1. [2024-01-01 10:00:00] buy milk")

	buf.Reset()
	Items(&buf, &commands.ItemListing{Object: "todo"})
	assert.Contains(t, buf.String(), "(empty)")
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer
	Show(&buf, &commands.ShowResult{Objects: &commands.ObjectListing{Project: "work"}})
	assert.Contains(t, buf.String(), "Objects in 'work'")

	buf.Reset()
	Show(&buf, &commands.ShowResult{Items: &commands.ItemListing{Object: "todo"}})
	assert.Contains(t, buf.String(), "=== todo ===")
}

func TestHistory(t *testing.T) {
	var buf bytes.Buffer
	History(&buf, &commands.HistoryListing{
		Object: "todo",
		Entries: []domain.HistoryEntry{
			{Action: domain.ActionAdd, Timestamp: "2024-01-01 10:00:00", Text: "a"},
			{Action: domain.ActionDeleteItem, Timestamp: "2024-01-02 10:00:00", Text: "a"},
		},
	})

	assert.Contains(t, buf.String(), "ADD         [2024-01-01 10:00:00] a")
	assert.Contains(t, buf.String(), "DELETE_ITEM [2024-01-02 10:00:00] a")
}

func TestSearchResults(t *testing.T) {
	var buf bytes.Buffer
	SearchResults(&buf, &commands.SearchResults{
		Matches: []domain.SearchResult{
			{Object: "todo", Index: 2, Item: domain.Item{Timestamp: "2024-01-01 10:00:00", Text: "buy milk"}},
		},
	})
	assert.Contains(t, buf.String(), "todo: [2024-01-01 10:00:00] buy milk")

	buf.Reset()
	SearchResults(&buf, &commands.SearchResults{})
	assert.Contains(t, buf.String(), "No matches found")
}

func TestMessagesAndWarnings(t *testing.T) {
	var buf bytes.Buffer
	Message(&buf, "Added item to todo")
	Message(&buf, "")
	Warnings(&buf, []string{"Source object 'x' not found, skipping"})
	Error(&buf, errors.New("boom"))

	assert.Equal(t,
		"Added item to todo\nWarning: Source object 'x' not found, skipping\nError: boom\n",
		buf.String())
}
