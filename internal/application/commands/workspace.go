package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"funknotes/internal/application"
	"funknotes/internal/domain"
	"funknotes/internal/ports"
)

// Workspace bundles the collaborators every command needs
type Workspace struct {
	Store  ports.ProjectStore
	State  ports.StateStore
	Prompt ports.Prompter
	Clock  domain.Clock
	Logger *slog.Logger
}

// NewWorkspace creates a workspace using the system clock and a silent logger
func NewWorkspace(store ports.ProjectStore, state ports.StateStore, prompt ports.Prompter) *Workspace {
	return &Workspace{
		Store:  store,
		State:  state,
		Prompt: prompt,
		Clock:  domain.SystemClock{},
		Logger: slog.New(slog.DiscardHandler),
	}
}

// target is a project loaded for one command
type target struct {
	path    string
	project *domain.Project
}

// resolve loads the project named by identifier, or the primary project
// when identifier is empty.
func (w *Workspace) resolve(identifier string) (*target, error) {
	if identifier != "" {
		path, p, err := w.Store.Resolve(identifier)
		if err != nil {
			return nil, err
		}
		return &target{path: path, project: p}, nil
	}

	cfg, err := w.State.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if !cfg.HasPrimary() {
		return nil, application.ErrNoPrimarySet
	}

	path, p, err := w.Store.ResolveIndex(cfg.PrimaryProject)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return nil, fmt.Errorf("primary project (index %d) not found: %w", cfg.PrimaryProject, application.ErrNotFound)
		}
		return nil, err
	}
	return &target{path: path, project: p}, nil
}

// save writes the project back unless ctx is already done
func (w *Workspace) save(ctx context.Context, t *target) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.Store.Save(t.path, t.project); err != nil {
		return err
	}
	w.logger().Debug("project written", "project", t.project.Name, "path", t.path)
	return nil
}

// ask forwards to the prompter. Without one it answers with the default,
// which declines destructive questions.
func (w *Workspace) ask(question string, defaultYes bool) bool {
	if w.Prompt == nil {
		return defaultYes
	}
	return w.Prompt.Ask(question, defaultYes)
}

func (w *Workspace) now() string {
	if w.Clock == nil {
		return domain.FormatTimestamp(domain.SystemClock{}.Now())
	}
	return domain.FormatTimestamp(w.Clock.Now())
}

func (w *Workspace) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return w.Logger
}

// findObject looks up an object or returns a NotFoundError
func findObject(p *domain.Project, name string) (*domain.Object, error) {
	obj := p.FindObject(name)
	if obj == nil {
		return nil, &application.NotFoundError{Kind: "object", Name: name, Suggestions: suggestObjects(p, name)}
	}
	return obj, nil
}

// suggestObjects returns up to three object names resembling name
func suggestObjects(p *domain.Project, name string) []string {
	names := make([]string, 0, len(p.Objects))
	for _, obj := range p.Objects {
		names = append(names, obj.Name)
	}
	matches := FuzzyFilter(names, name)
	if len(matches) > 3 {
		matches = matches[:3]
	}
	return matches
}

// cancelled reports a declined confirmation
func cancelled(format string, args ...any) error {
	return &application.CancelledError{Message: fmt.Sprintf(format, args...)}
}

func validateIdentifier(identifier string) error {
	return application.ValidateRequired("identifier", identifier)
}
