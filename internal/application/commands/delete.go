package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"funknotes/internal/application"
	"funknotes/internal/domain"
)

// DeleteObjectResult contains the result of deleting an object
type DeleteObjectResult struct {
	Object       string
	DeletedItems int
	Message      string
}

// DeleteObjectCommand removes an object with all its items and history
type DeleteObjectCommand struct {
	ws      *Workspace
	Project string
	Name    string
}

// NewDeleteObjectCommand creates a new DeleteObjectCommand
func NewDeleteObjectCommand(ws *Workspace, project, name string) *DeleteObjectCommand {
	return &DeleteObjectCommand{
		ws:      ws,
		Project: project,
		Name:    name,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteObjectCommand) Validate() error {
	return application.ValidateRequired("objectName", c.Name)
}

// Execute runs the delete object command
func (c *DeleteObjectCommand) Execute(ctx context.Context) (*DeleteObjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t, err := c.ws.resolve(c.Project)
	if err != nil {
		return nil, err
	}

	obj, err := findObject(t.project, c.Name)
	if err != nil {
		return nil, err
	}

	if !c.ws.ask(fmt.Sprintf("Delete object '%s'?", c.Name), false) {
		return nil, cancelled("Deletion of object '%s' cancelled", c.Name)
	}

	count := obj.CountItems()
	t.project.RemoveObject(c.Name)

	if err := c.ws.save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to delete object: %w", err)
	}

	return &DeleteObjectResult{
		Object:       c.Name,
		DeletedItems: count,
		Message:      fmt.Sprintf("Deleted object '%s' from project", c.Name),
	}, nil
}

// DeleteItemsResult contains the result of deleting one or more items
type DeleteItemsResult struct {
	Object  string
	Indices []int
	Deleted []domain.Item
	Message string
}

// DeleteItemCommand removes a single item by its 1-based index
type DeleteItemCommand struct {
	ws      *Workspace
	Project string
	Object  string
	Index   int
}

// NewDeleteItemCommand creates a new DeleteItemCommand
func NewDeleteItemCommand(ws *Workspace, project, object string, index int) *DeleteItemCommand {
	return &DeleteItemCommand{
		ws:      ws,
		Project: project,
		Object:  object,
		Index:   index,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteItemCommand) Validate() error {
	return application.ValidateRequired("objectName", c.Object)
}

// Execute runs the delete item command
func (c *DeleteItemCommand) Execute(ctx context.Context) (*DeleteItemsResult, error) {
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
	if _, ok := obj.ItemAt(c.Index); !ok {
		return nil, &application.RangeError{Object: c.Object, Index: c.Index, Count: obj.CountItems()}
	}

	if !c.ws.ask(fmt.Sprintf("Delete item %d from '%s'?", c.Index, c.Object), false) {
		return nil, cancelled("Deletion of item %d cancelled", c.Index)
	}

	removed := obj.RemoveItems([]int{c.Index}, c.ws.now())

	if err := c.ws.save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	return &DeleteItemsResult{
		Object:  c.Object,
		Indices: []int{c.Index},
		Deleted: removed,
		Message: fmt.Sprintf("Deleted item %d from '%s'", c.Index, c.Object),
	}, nil
}

// DeleteItemsCommand removes every item named by an index list such as
// "1,3,5-7" in a single batch.
type DeleteItemsCommand struct {
	ws      *Workspace
	Project string
	Object  string
	Spec    string
}

// NewDeleteItemsCommand creates a new DeleteItemsCommand
func NewDeleteItemsCommand(ws *Workspace, project, object, spec string) *DeleteItemsCommand {
	return &DeleteItemsCommand{
		ws:      ws,
		Project: project,
		Object:  object,
		Spec:    spec,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteItemsCommand) Validate() error {
	if err := application.ValidateRequired("objectName", c.Object); err != nil {
		return err
	}
	return application.ValidateRequired("indexSpec", c.Spec)
}

// Execute runs the delete items command. An empty selection is reported in
// the result message, not as an error.
func (c *DeleteItemsCommand) Execute(ctx context.Context) (*DeleteItemsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t, err := c.ws.resolve(c.Project)
	if err != nil {
		return nil, err
	}

	set := domain.ParseIndexSpec(c.Spec)
	if len(set) == 0 {
		return &DeleteItemsResult{Object: c.Object, Message: "No valid indexes provided"}, nil
	}

	obj, err := findObject(t.project, c.Object)
	if err != nil {
		return nil, err
	}

	indices := set.Within(obj.CountItems())
	if len(indices) == 0 {
		return &DeleteItemsResult{Object: c.Object, Message: "No matching items to delete"}, nil
	}

	if !c.ws.ask(fmt.Sprintf("Delete items %s from '%s'?", c.Spec, c.Object), false) {
		return nil, cancelled("Deletion cancelled")
	}

	removed := obj.RemoveItems(indices, c.ws.now())

	if err := c.ws.save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to delete items: %w", err)
	}

	return &DeleteItemsResult{
		Object:  c.Object,
		Indices: indices,
		Deleted: removed,
		Message: fmt.Sprintf("Deleted %d items from '%s'", len(removed), c.Object),
	}, nil
}

// DeleteProjectResult contains the result of deleting projects
type DeleteProjectResult struct {
	Deleted        []domain.ProjectSummary
	PrimaryCleared bool
	Warnings       []string
	Message        string
}

// DeleteProjectCommand removes one or more project storage units
type DeleteProjectCommand struct {
	ws          *Workspace
	Identifiers []string
}

// NewDeleteProjectCommand creates a new DeleteProjectCommand
func NewDeleteProjectCommand(ws *Workspace, identifiers ...string) *DeleteProjectCommand {
	return &DeleteProjectCommand{
		ws:          ws,
		Identifiers: identifiers,
	}
}

// Validate checks if at least one identifier was given
func (c *DeleteProjectCommand) Validate() error {
	if len(c.Identifiers) == 0 {
		return &application.ValidationError{
			Field:   "identifier",
			Message: "project identifier is required",
		}
	}
	for _, id := range c.Identifiers {
		if err := validateIdentifier(id); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the delete project command. Unknown identifiers are
// reported as warnings when others resolve.
func (c *DeleteProjectCommand) Execute(ctx context.Context) (*DeleteProjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &DeleteProjectResult{}
	var (
		targets []domain.ProjectSummary
		seen    = make(map[string]bool)
		lastErr error
	)
	for _, id := range c.Identifiers {
		path, p, err := c.ws.Store.Resolve(id)
		if err != nil {
			if !errors.Is(err, application.ErrNotFound) {
				return nil, err
			}
			lastErr = err
			result.Warnings = append(result.Warnings, fmt.Sprintf("Project '%s' not found", id))
			continue
		}
		if seen[path] {
			continue
		}
		seen[path] = true
		targets = append(targets, domain.ProjectSummary{Index: p.Index, Name: p.Name, Path: path, ObjectCount: len(p.Objects)})
	}
	if len(targets) == 0 {
		return nil, lastErr
	}

	if !c.ws.ask(deleteProjectsQuestion(targets), false) {
		return nil, cancelled("Deletion cancelled")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, s := range targets {
		if err := c.ws.Store.RemoveEntry(s.Path); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to delete project '%s': %v", s.Name, err))
			continue
		}
		result.Deleted = append(result.Deleted, s)
	}
	if len(result.Deleted) == 0 {
		return nil, fmt.Errorf("failed to delete project: %s", strings.Join(result.Warnings, "; "))
	}

	cleared, err := clearPrimary(c.ws, result.Deleted)
	if err != nil {
		return nil, err
	}
	result.PrimaryCleared = cleared

	var lines []string
	for _, s := range result.Deleted {
		lines = append(lines, fmt.Sprintf("Deleted project '%s' (index %d)", s.Name, s.Index))
	}
	if cleared {
		lines = append(lines, "Primary project was deleted; primary unset.")
	}
	result.Message = strings.Join(lines, "\n")
	return result, nil
}

func deleteProjectsQuestion(targets []domain.ProjectSummary) string {
	if len(targets) == 1 {
		return fmt.Sprintf("Delete project '%s' (index %d)?", targets[0].Name, targets[0].Index)
	}
	names := make([]string, 0, len(targets))
	for _, s := range targets {
		names = append(names, s.Name)
	}
	return fmt.Sprintf("Delete projects %s?", strings.Join(names, ", "))
}

// clearPrimary unsets the primary project when it is among removed
func clearPrimary(ws *Workspace, removed []domain.ProjectSummary) (bool, error) {
	cfg, err := ws.State.Load()
	if err != nil {
		return false, fmt.Errorf("failed to load state: %w", err)
	}

	cleared := false
	for _, s := range removed {
		if cfg.ClearPrimary(s.Index) {
			cleared = true
		}
	}
	if !cleared {
		return false, nil
	}
	if err := ws.State.Save(cfg); err != nil {
		return false, fmt.Errorf("failed to save state: %w", err)
	}
	return true, nil
}
