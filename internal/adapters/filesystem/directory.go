package filesystem

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"funknotes/internal/application"
	"funknotes/internal/domain"
	"funknotes/internal/ports"
)

// ProjectsDirName is the directory under the home root holding project files
const ProjectsDirName = domain.ReservedProjectName

// Directory implements ports.ProjectStore over a directory of project files
// named <index>_<name><ext>.
type Directory struct {
	root   string
	codec  ports.ProjectCodec
	state  ports.StateStore
	logger *slog.Logger
}

// Ensure Directory implements ports.ProjectStore
var _ ports.ProjectStore = (*Directory)(nil)

// NewDirectory creates a directory index rooted at projectsDir
func NewDirectory(projectsDir string, codec ports.ProjectCodec, state ports.StateStore, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Directory{
		root:   ExpandHome(projectsDir),
		codec:  codec,
		state:  state,
		logger: logger,
	}
}

// Root returns the projects directory
func (d *Directory) Root() string {
	return d.root
}

// ListEntries returns the project file names owned by the active codec,
// in directory order. A missing directory has no entries.
func (d *Directory) ListEntries() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if filepath.Ext(name) != d.codec.Extension() {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// RemoveEntry deletes a project file
func (d *Directory) RemoveEntry(path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &application.NotFoundError{Kind: "project file", Name: path}
		}
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	d.logger.Debug("removed project file", "path", path)
	return nil
}

// Resolve finds a project by index (all digits) or exact name.
// The first match in directory order wins.
func (d *Directory) Resolve(identifier string) (string, *domain.Project, error) {
	if identifier == "" {
		return "", nil, &application.ValidationError{Field: "identifier", Message: "project identifier is required"}
	}
	if isAllDigits(identifier) {
		index, err := strconv.Atoi(identifier)
		if err != nil {
			return "", nil, &application.NotFoundError{Kind: "project", Name: identifier}
		}
		return d.ResolveIndex(index)
	}

	path, p, err := d.find(func(p *domain.Project) bool { return p.Name == identifier })
	if err != nil {
		return "", nil, err
	}
	if p == nil {
		return "", nil, &application.NotFoundError{Kind: "project", Name: identifier}
	}
	return path, p, nil
}

// ResolveIndex finds the project whose stored index equals index
func (d *Directory) ResolveIndex(index int) (string, *domain.Project, error) {
	path, p, err := d.find(func(p *domain.Project) bool { return p.Index == index })
	if err != nil {
		return "", nil, err
	}
	if p == nil {
		return "", nil, &application.NotFoundError{Kind: "project", Name: strconv.Itoa(index)}
	}
	return path, p, nil
}

// AllocateNextIndex bumps the persisted counter and returns the new index.
// The counter is first raised to the highest index on disk so a lost state
// file cannot hand out an index twice.
func (d *Directory) AllocateNextIndex() (int, error) {
	cfg, err := d.state.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load state: %w", err)
	}

	summaries, err := d.ListProjects()
	if err != nil {
		return 0, err
	}
	for _, s := range summaries {
		if s.Index > cfg.ProjectCounter {
			cfg.ProjectCounter = s.Index
		}
	}

	index := cfg.NextIndex()
	if err := d.state.Save(cfg); err != nil {
		return 0, fmt.Errorf("failed to save state: %w", err)
	}
	d.logger.Debug("allocated project index", "index", index)
	return index, nil
}

// CreateProject allocates an index and writes an empty project
func (d *Directory) CreateProject(name string) (string, *domain.Project, error) {
	if err := application.ValidateProjectName(name); err != nil {
		return "", nil, err
	}

	index, err := d.AllocateNextIndex()
	if err != nil {
		return "", nil, err
	}

	p := domain.NewProject(name, index)
	path := filepath.Join(d.root, fmt.Sprintf("%d_%s%s", index, name, d.codec.Extension()))
	if err := d.Save(path, p); err != nil {
		return "", nil, err
	}
	return path, p, nil
}

// ListProjects returns a summary of every readable project, sorted by index
func (d *Directory) ListProjects() ([]domain.ProjectSummary, error) {
	var summaries []domain.ProjectSummary
	err := d.walk(func(path string, p *domain.Project) bool {
		summaries = append(summaries, domain.ProjectSummary{
			Index:       p.Index,
			Name:        p.Name,
			Path:        path,
			ObjectCount: len(p.Objects),
		})
		return false
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Index < summaries[j].Index
	})
	return summaries, nil
}

// Load reads a project through the codec
func (d *Directory) Load(path string) (*domain.Project, error) {
	return d.codec.Load(path)
}

// Save writes a project through the codec
func (d *Directory) Save(path string, p *domain.Project) error {
	if err := d.codec.Save(path, p); err != nil {
		return fmt.Errorf("failed to save project '%s': %w", p.Name, err)
	}
	d.logger.Debug("saved project", "name", p.Name, "index", p.Index, "path", path)
	return nil
}

// find returns the first project matching match, or a nil project
func (d *Directory) find(match func(*domain.Project) bool) (string, *domain.Project, error) {
	var (
		foundPath string
		found     *domain.Project
	)
	err := d.walk(func(path string, p *domain.Project) bool {
		if match(p) {
			foundPath, found = path, p
			return true
		}
		return false
	})
	return foundPath, found, err
}

// walk loads each project file in directory order until visit returns true.
// Files that fail to load are skipped.
func (d *Directory) walk(visit func(path string, p *domain.Project) bool) error {
	names, err := d.ListEntries()
	if err != nil {
		return err
	}

	for _, name := range names {
		path := filepath.Join(d.root, name)
		p, err := d.codec.Load(path)
		if err != nil {
			d.logger.Debug("skipping unreadable project file", "path", path, "error", err)
			continue
		}
		if visit(path, p) {
			return nil
		}
	}
	return nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
