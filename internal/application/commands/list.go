package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/gobwas/glob"

	"funknotes/internal/application"
	"funknotes/internal/domain"
)

// ListProjectsCommand lists every project, sorted by index
type ListProjectsCommand struct {
	ws      *Workspace
	Pattern string // optional glob on project names
}

// NewListProjectsCommand creates a new ListProjectsCommand
func NewListProjectsCommand(ws *Workspace, pattern string) *ListProjectsCommand {
	return &ListProjectsCommand{
		ws:      ws,
		Pattern: pattern,
	}
}

// Execute runs the list projects command
func (c *ListProjectsCommand) Execute(ctx context.Context) ([]domain.ProjectSummary, error) {
	var matcher glob.Glob
	if c.Pattern != "" {
		g, err := glob.Compile(c.Pattern)
		if err != nil {
			return nil, &application.ValidationError{
				Field:   "pattern",
				Message: fmt.Sprintf("invalid pattern %q: %v", c.Pattern, err),
			}
		}
		matcher = g
	}

	summaries, err := c.ws.Store.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	cfg, err := c.ws.State.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	out := make([]domain.ProjectSummary, 0, len(summaries))
	for _, s := range summaries {
		if matcher != nil && !matcher.Match(s.Name) {
			continue
		}
		s.IsPrimary = cfg.HasPrimary() && s.Index == cfg.PrimaryProject
		out = append(out, s)
	}
	return out, nil
}

// ObjectSummary is an object name with its item count
type ObjectSummary struct {
	Name  string
	Count int
}

// ObjectListing is the set of objects in one project
type ObjectListing struct {
	Project string
	Index   int
	Objects []ObjectSummary
}

// ListObjectsCommand lists the objects of a project in stored order
type ListObjectsCommand struct {
	ws      *Workspace
	Project string
}

// NewListObjectsCommand creates a new ListObjectsCommand
func NewListObjectsCommand(ws *Workspace, project string) *ListObjectsCommand {
	return &ListObjectsCommand{
		ws:      ws,
		Project: project,
	}
}

// Execute runs the list objects command
func (c *ListObjectsCommand) Execute(ctx context.Context) (*ObjectListing, error) {
	t, err := c.ws.resolve(c.Project)
	if err != nil {
		return nil, err
	}
	return listObjects(t.project), nil
}

func listObjects(p *domain.Project) *ObjectListing {
	listing := &ObjectListing{
		Project: p.Name,
		Index:   p.Index,
		Objects: make([]ObjectSummary, 0, len(p.Objects)),
	}
	for _, obj := range p.Objects {
		listing.Objects = append(listing.Objects, ObjectSummary{Name: obj.Name, Count: obj.CountItems()})
	}
	return listing
}

// NumberedItem is an item with its 1-based position
type NumberedItem struct {
	Index int
	domain.Item
}

// ItemListing is the content of one object, oldest first
type ItemListing struct {
	Project string
	Object  string
	Items   []NumberedItem
}

// ListItemsCommand lists the items of one object
type ListItemsCommand struct {
	ws      *Workspace
	Project string
	Object  string
}

// NewListItemsCommand creates a new ListItemsCommand
func NewListItemsCommand(ws *Workspace, project, object string) *ListItemsCommand {
	return &ListItemsCommand{
		ws:      ws,
		Project: project,
		Object:  object,
	}
}

// Validate checks if an object name was given
func (c *ListItemsCommand) Validate() error {
	return application.ValidateRequired("objectName", c.Object)
}

// Execute runs the list items command
func (c *ListItemsCommand) Execute(ctx context.Context) (*ItemListing, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t, err := c.ws.resolve(c.Project)
	if err != nil {
		return nil, err
	}

	obj, err := findObject(t.project, c.Object)
	if err != nil {
		return nil, err
	}
	return listItems(t.project, obj), nil
}

func listItems(p *domain.Project, obj *domain.Object) *ItemListing {
	items := obj.ItemsInOrder()
	listing := &ItemListing{
		Project: p.Name,
		Object:  obj.Name,
		Items:   make([]NumberedItem, 0, len(items)),
	}
	for i, item := range items {
		listing.Items = append(listing.Items, NumberedItem{Index: i + 1, Item: item})
	}
	return listing
}

// HistoryListing is the audit trail of one object
type HistoryListing struct {
	Project string
	Object  string
	Entries []domain.HistoryEntry
}

// ShowHistoryCommand lists the history entries of an object
type ShowHistoryCommand struct {
	ws      *Workspace
	Project string
	Object  string
}

// NewShowHistoryCommand creates a new ShowHistoryCommand
func NewShowHistoryCommand(ws *Workspace, project, object string) *ShowHistoryCommand {
	return &ShowHistoryCommand{
		ws:      ws,
		Project: project,
		Object:  object,
	}
}

// Validate checks if an object name was given
func (c *ShowHistoryCommand) Validate() error {
	return application.ValidateRequired("objectName", c.Object)
}

// Execute runs the show history command
func (c *ShowHistoryCommand) Execute(ctx context.Context) (*HistoryListing, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t, err := c.ws.resolve(c.Project)
	if err != nil {
		return nil, err
	}

	obj, err := findObject(t.project, c.Object)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.HistoryEntry, len(obj.History))
	copy(entries, obj.History)
	return &HistoryListing{
		Project: t.project.Name,
		Object:  obj.Name,
		Entries: entries,
	}, nil
}

// ShowResult holds either an object listing or an item listing
type ShowResult struct {
	Objects *ObjectListing
	Items   *ItemListing
}

// ShowCommand lists objects or items depending on its arguments:
// none lists the primary project's objects, a project identifier lists that
// project's objects, an object name lists that object of the primary
// project, and a project plus an object lists that object.
type ShowCommand struct {
	ws   *Workspace
	Args []string
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(ws *Workspace, args ...string) *ShowCommand {
	return &ShowCommand{
		ws:   ws,
		Args: args,
	}
}

// Validate checks the argument count
func (c *ShowCommand) Validate() error {
	if len(c.Args) > 2 {
		return &application.ValidationError{
			Field:   "args",
			Message: "expected at most a project and an object",
		}
	}
	return nil
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch len(c.Args) {
	case 0:
		listing, err := NewListObjectsCommand(c.ws, "").Execute(ctx)
		if err != nil {
			return nil, err
		}
		return &ShowResult{Objects: listing}, nil

	case 1:
		arg := c.Args[0]
		_, p, err := c.ws.Store.Resolve(arg)
		if err == nil {
			return &ShowResult{Objects: listObjects(p)}, nil
		}
		if !errors.Is(err, application.ErrNotFound) {
			return nil, err
		}
		c.ws.logger().Debug("show argument is not a project, trying object", "arg", arg)
		listing, err := NewListItemsCommand(c.ws, "", arg).Execute(ctx)
		if err != nil {
			return nil, err
		}
		return &ShowResult{Items: listing}, nil

	default:
		listing, err := NewListItemsCommand(c.ws, c.Args[0], c.Args[1]).Execute(ctx)
		if err != nil {
			return nil, err
		}
		return &ShowResult{Items: listing}, nil
	}
}
