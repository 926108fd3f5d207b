package commands

import (
	"context"
	"errors"
	"fmt"

	"funknotes/internal/application"
	"funknotes/internal/domain"
)

// NewProjectResult contains the result of creating a project
type NewProjectResult struct {
	Project *domain.Project
	Path    string
	Message string
}

// NewProjectCommand creates an empty project with the next free index
type NewProjectCommand struct {
	ws   *Workspace
	Name string
}

// NewNewProjectCommand creates a new NewProjectCommand
func NewNewProjectCommand(ws *Workspace, name string) *NewProjectCommand {
	return &NewProjectCommand{
		ws:   ws,
		Name: name,
	}
}

// Validate checks if the project name is usable
func (c *NewProjectCommand) Validate() error {
	return application.ValidateProjectName(c.Name)
}

// Execute runs the new project command
func (c *NewProjectCommand) Execute(ctx context.Context) (*NewProjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, p, err := c.ws.Store.CreateProject(c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &NewProjectResult{
		Project: p,
		Path:    path,
		Message: fmt.Sprintf("Created project '%s' with index %d", p.Name, p.Index),
	}, nil
}

// AddObjectResult contains the result of creating an object
type AddObjectResult struct {
	Project string
	Object  string
	Message string
}

// AddObjectCommand creates an empty object in a project
type AddObjectCommand struct {
	ws      *Workspace
	Project string // identifier; empty means the primary project
	Name    string
}

// NewAddObjectCommand creates a new AddObjectCommand
func NewAddObjectCommand(ws *Workspace, project, name string) *AddObjectCommand {
	return &AddObjectCommand{
		ws:      ws,
		Project: project,
		Name:    name,
	}
}

// Validate checks if the object name is usable
func (c *AddObjectCommand) Validate() error {
	return application.ValidateObjectName(c.Name)
}

// Execute runs the add object command
func (c *AddObjectCommand) Execute(ctx context.Context) (*AddObjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t, err := c.ws.resolve(c.Project)
	if err != nil {
		return nil, err
	}

	if _, err := t.project.AddObject(c.Name); err != nil {
		if errors.Is(err, domain.ErrDuplicateObject) {
			return nil, fmt.Errorf("object '%s' %w", c.Name, application.ErrAlreadyExists)
		}
		return nil, err
	}

	if err := c.ws.save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create object: %w", err)
	}

	return &AddObjectResult{
		Project: t.project.Name,
		Object:  c.Name,
		Message: fmt.Sprintf("Created object '%s' in project '%s'", c.Name, t.project.Name),
	}, nil
}

// AddItemResult contains the result of adding an item
type AddItemResult struct {
	Project       string
	Object        string
	Index         int
	Item          domain.Item
	CreatedObject bool
	Message       string
}

// AddItemCommand appends a timestamped item to an object, creating the
// object after confirmation when it is missing.
type AddItemCommand struct {
	ws      *Workspace
	Project string
	Object  string
	Text    string
}

// NewAddItemCommand creates a new AddItemCommand
func NewAddItemCommand(ws *Workspace, project, object, text string) *AddItemCommand {
	return &AddItemCommand{
		ws:      ws,
		Project: project,
		Object:  object,
		Text:    text,
	}
}

// Validate checks if the add operation is valid
func (c *AddItemCommand) Validate() error {
	if err := application.ValidateObjectName(c.Object); err != nil {
		return err
	}
	return application.ValidateText(c.Text)
}

// Execute runs the add item command
func (c *AddItemCommand) Execute(ctx context.Context) (*AddItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t, err := c.ws.resolve(c.Project)
	if err != nil {
		return nil, err
	}

	created := false
	obj := t.project.FindObject(c.Object)
	if obj == nil {
		question := fmt.Sprintf("The object '%s' does not exist, create it?", c.Object)
		if !c.ws.ask(question, true) {
			return nil, cancelled("Not creating object '%s'. Aborting add.", c.Object)
		}
		if obj, err = t.project.AddObject(c.Object); err != nil {
			return nil, err
		}
		created = true
	}

	item := obj.AppendItem(c.Text, c.ws.now())

	if err := c.ws.save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	return &AddItemResult{
		Project:       t.project.Name,
		Object:        obj.Name,
		Index:         obj.CountItems(),
		Item:          item,
		CreatedObject: created,
		Message:       fmt.Sprintf("Added item to %s", obj.Name),
	}, nil
}
