package commands

import (
	"context"
	"fmt"
)

// SetPrimaryResult contains the result of changing the primary project
type SetPrimaryResult struct {
	Index   int
	Name    string
	Message string
}

// SetPrimaryCommand makes a project the implicit target of other commands
type SetPrimaryCommand struct {
	ws         *Workspace
	Identifier string
}

// NewSetPrimaryCommand creates a new SetPrimaryCommand
func NewSetPrimaryCommand(ws *Workspace, identifier string) *SetPrimaryCommand {
	return &SetPrimaryCommand{
		ws:         ws,
		Identifier: identifier,
	}
}

// Validate checks if an identifier was given
func (c *SetPrimaryCommand) Validate() error {
	return validateIdentifier(c.Identifier)
}

// Execute runs the set primary command
func (c *SetPrimaryCommand) Execute(ctx context.Context) (*SetPrimaryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	_, p, err := c.ws.Store.Resolve(c.Identifier)
	if err != nil {
		return nil, err
	}

	cfg, err := c.ws.State.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	cfg.PrimaryProject = p.Index

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.ws.State.Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return &SetPrimaryResult{
		Index:   p.Index,
		Name:    p.Name,
		Message: fmt.Sprintf("Set primary project to '%s'", p.Name),
	}, nil
}
