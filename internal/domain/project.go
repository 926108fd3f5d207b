package domain

import (
	"errors"
	"slices"
)

// ReservedProjectName is the name of the directory holding project files;
// no project may take it.
const ReservedProjectName = "projects"

// MaxTextLength is the longest item text accepted, in bytes.
const MaxTextLength = 1023

// ErrDuplicateObject is returned by AddObject when the name is taken.
var ErrDuplicateObject = errors.New("object already exists")

// Action identifies the kind of history entry
type Action string

const (
	ActionAdd        Action = "ADD"
	ActionDeleteItem Action = "DELETE_ITEM"
)

// Valid reports whether the action is one the store records
func (a Action) Valid() bool {
	return a == ActionAdd || a == ActionDeleteItem
}

// Item is a single timestamped note
type Item struct {
	Timestamp string
	Text      string
}

// HistoryEntry is an audit record of a change to an object
type HistoryEntry struct {
	Action    Action
	Timestamp string
	Text      string
}

// Object is a named list of items plus its history.
// Items and History are kept oldest first.
type Object struct {
	Name    string
	Items   []Item
	History []HistoryEntry
}

// Project is the top-level container persisted as one storage unit
type Project struct {
	Name    string
	Index   int
	Objects []*Object
}

// ProjectSummary is a lightweight view of a project used in listings
type ProjectSummary struct {
	Index       int
	Name        string
	Path        string
	ObjectCount int
	IsPrimary   bool
}

// NewProject creates an empty project
func NewProject(name string, index int) *Project {
	return &Project{Name: name, Index: index}
}

// FindObject returns the object with the exact name, or nil
func (p *Project) FindObject(name string) *Object {
	for _, o := range p.Objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// AddObject appends an empty object. It fails if the name is taken.
func (p *Project) AddObject(name string) (*Object, error) {
	if p.FindObject(name) != nil {
		return nil, ErrDuplicateObject
	}
	obj := &Object{Name: name}
	p.Objects = append(p.Objects, obj)
	return obj, nil
}

// RemoveObject drops the named object. Returns false if it was absent.
func (p *Project) RemoveObject(name string) bool {
	for i, o := range p.Objects {
		if o.Name == name {
			p.Objects = slices.Delete(p.Objects, i, i+1)
			return true
		}
	}
	return false
}

// Absorb merges every object of src into p. Objects with a matching name
// get src's items and history appended; the rest are moved over as-is.
func (p *Project) Absorb(src *Project) {
	for _, so := range src.Objects {
		if to := p.FindObject(so.Name); to != nil {
			to.Absorb(so)
			continue
		}
		p.Objects = append(p.Objects, so)
	}
	src.Objects = nil
}

// CountItems returns the number of items in the object
func (o *Object) CountItems() int {
	return len(o.Items)
}

// ItemAt returns the item at a 1-based index
func (o *Object) ItemAt(index int) (Item, bool) {
	if index < 1 || index > len(o.Items) {
		return Item{}, false
	}
	return o.Items[index-1], true
}

// ItemsInOrder returns a copy of the items, oldest first
func (o *Object) ItemsInOrder() []Item {
	return slices.Clone(o.Items)
}

// AppendItem adds a new item and records an ADD history entry
func (o *Object) AppendItem(text, timestamp string) Item {
	item := Item{Timestamp: timestamp, Text: text}
	o.Items = append(o.Items, item)
	o.History = append(o.History, HistoryEntry{
		Action:    ActionAdd,
		Timestamp: timestamp,
		Text:      text,
	})
	return item
}

// RemoveItems deletes every item at the given 1-based indices in one pass.
// Positions refer to the list before any removal. Out-of-range and repeated
// indices are ignored. A DELETE_ITEM entry is recorded per removed item, in
// ascending index order. The removed items are returned in that order.
func (o *Object) RemoveItems(indices []int, timestamp string) []Item {
	marked := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx >= 1 && idx <= len(o.Items) {
			marked[idx-1] = true
		}
	}
	if len(marked) == 0 {
		return nil
	}

	kept := make([]Item, 0, len(o.Items)-len(marked))
	removed := make([]Item, 0, len(marked))
	for i, item := range o.Items {
		if marked[i] {
			removed = append(removed, item)
			continue
		}
		kept = append(kept, item)
	}
	o.Items = kept

	for _, item := range removed {
		o.History = append(o.History, HistoryEntry{
			Action:    ActionDeleteItem,
			Timestamp: timestamp,
			Text:      item.Text,
		})
	}
	return removed
}

// Absorb moves src's items after o's items and src's history after o's
// history, leaving src empty. Neither list is re-sorted.
func (o *Object) Absorb(src *Object) {
	o.Items = append(o.Items, src.Items...)
	o.History = append(o.History, src.History...)
	src.Items = nil
	src.History = nil
}
