package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"funknotes/internal/application"
	"funknotes/internal/domain"
)

// MergeProjectsResult contains the result of merging projects
type MergeProjectsResult struct {
	Target         string
	Merged         []string
	SourcesDeleted bool
	PrimaryCleared bool
	Warnings       []string
	Message        string
}

// MergeProjectsCommand folds every object of the source projects into the
// target project. The last identifier is the target.
type MergeProjectsCommand struct {
	ws          *Workspace
	Identifiers []string
}

// NewMergeProjectsCommand creates a new MergeProjectsCommand
func NewMergeProjectsCommand(ws *Workspace, identifiers ...string) *MergeProjectsCommand {
	return &MergeProjectsCommand{
		ws:          ws,
		Identifiers: identifiers,
	}
}

// Validate checks if the merge operation is valid
func (c *MergeProjectsCommand) Validate() error {
	if len(c.Identifiers) < 2 {
		return &application.ValidationError{
			Field:   "identifier",
			Message: "need at least two projects to merge: sources...,target",
		}
	}
	for _, id := range c.Identifiers {
		if err := validateIdentifier(id); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the merge projects command
func (c *MergeProjectsCommand) Execute(ctx context.Context) (*MergeProjectsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	targetID := c.Identifiers[len(c.Identifiers)-1]
	targetPath, targetProject, err := c.ws.Store.Resolve(targetID)
	if err != nil {
		return nil, err
	}
	t := &target{path: targetPath, project: targetProject}

	result := &MergeProjectsResult{Target: targetProject.Name}
	seen := map[string]bool{targetPath: true}
	var sources []*target
	for _, id := range c.Identifiers[:len(c.Identifiers)-1] {
		path, p, err := c.ws.Store.Resolve(id)
		if err != nil {
			if !errors.Is(err, application.ErrNotFound) {
				return nil, err
			}
			result.Warnings = append(result.Warnings, fmt.Sprintf("Project '%s' not found, skipping", id))
			continue
		}
		if seen[path] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Project '%s' listed twice or is the target, skipping", id))
			continue
		}
		seen[path] = true
		sources = append(sources, &target{path: path, project: p})
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no source projects to merge into '%s': %w", targetProject.Name, application.ErrNotFound)
	}

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.project.Name)
	}
	if !c.ws.ask(fmt.Sprintf("Merge %s into %s?", strings.Join(names, ","), targetProject.Name), false) {
		return nil, cancelled("Merge cancelled")
	}

	for _, s := range sources {
		c.ws.logger().Debug("merging project", "source", s.project.Name, "objects", len(s.project.Objects), "target", targetProject.Name)
		targetProject.Absorb(s.project)
	}
	result.Merged = names

	if err := c.ws.save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to write target project: %w", err)
	}
	lines := []string{fmt.Sprintf("Merged into %s", targetProject.Name)}

	if c.ws.ask("Delete source projects?", false) {
		var removed []domain.ProjectSummary
		for _, s := range sources {
			if err := c.ws.Store.RemoveEntry(s.path); err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to delete project '%s': %v", s.project.Name, err))
				continue
			}
			removed = append(removed, domain.ProjectSummary{Index: s.project.Index, Name: s.project.Name, Path: s.path})
			lines = append(lines, fmt.Sprintf("Deleted project '%s' (index %d)", s.project.Name, s.project.Index))
		}
		result.SourcesDeleted = len(removed) == len(sources)

		cleared, err := clearPrimary(c.ws, removed)
		if err != nil {
			return nil, err
		}
		result.PrimaryCleared = cleared
		if cleared {
			lines = append(lines, "Primary project was deleted; primary unset.")
		}
	}

	result.Message = strings.Join(lines, "\n")
	return result, nil
}

// MergeObjectsResult contains the result of merging objects
type MergeObjectsResult struct {
	Project        string
	Target         string
	Merged         []string
	SourcesDeleted bool
	Warnings       []string
	Message        string
}

// MergeObjectsCommand appends the items and history of source objects to a
// target object in the same project. The last name is the target.
type MergeObjectsCommand struct {
	ws      *Workspace
	Project string
	Names   []string
}

// NewMergeObjectsCommand creates a new MergeObjectsCommand
func NewMergeObjectsCommand(ws *Workspace, project string, names ...string) *MergeObjectsCommand {
	return &MergeObjectsCommand{
		ws:      ws,
		Project: project,
		Names:   names,
	}
}

// Validate checks if the merge operation is valid
func (c *MergeObjectsCommand) Validate() error {
	if len(c.Names) < 2 {
		return &application.ValidationError{
			Field:   "objectName",
			Message: "need at least two objects to merge (sources,target)",
		}
	}
	for _, name := range c.Names {
		if err := application.ValidateRequired("objectName", name); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the merge objects command. A missing target fails before
// anything changes; missing sources are skipped with a warning.
func (c *MergeObjectsCommand) Execute(ctx context.Context) (*MergeObjectsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t, err := c.ws.resolve(c.Project)
	if err != nil {
		return nil, err
	}

	targetName := c.Names[len(c.Names)-1]
	tobj := t.project.FindObject(targetName)
	if tobj == nil {
		return nil, &application.NotFoundError{Kind: "target object", Name: targetName}
	}

	sourceNames := c.Names[:len(c.Names)-1]
	question := fmt.Sprintf("Merge %s into %s in project %s?", strings.Join(sourceNames, ","), targetName, t.project.Name)
	if !c.ws.ask(question, false) {
		return nil, cancelled("Merge cancelled")
	}

	result := &MergeObjectsResult{Project: t.project.Name, Target: targetName}
	seen := map[string]bool{targetName: true}
	for _, name := range sourceNames {
		if seen[name] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Source object '%s' listed twice or is the target, skipping", name))
			continue
		}
		seen[name] = true

		sobj := t.project.FindObject(name)
		if sobj == nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Source object '%s' not found, skipping", name))
			continue
		}
		tobj.Absorb(sobj)
		result.Merged = append(result.Merged, name)
	}

	if len(result.Merged) == 0 {
		result.Message = fmt.Sprintf("Nothing merged into %s", targetName)
		return result, nil
	}

	lines := []string{fmt.Sprintf("Merged objects into %s", targetName)}
	if c.ws.ask("Delete source objects?", false) {
		for _, name := range result.Merged {
			t.project.RemoveObject(name)
		}
		result.SourcesDeleted = true
		lines = append(lines, "Deleted source objects")
	}

	if err := c.ws.save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to write project: %w", err)
	}

	result.Message = strings.Join(lines, "\n")
	return result, nil
}
