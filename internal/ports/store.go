package ports

import "funknotes/internal/domain"

// ProjectStore locates, creates and removes project storage units
type ProjectStore interface {
	// Directory enumeration
	ListEntries() ([]string, error)
	RemoveEntry(path string) error

	// Resolution by numeric index or exact name
	Resolve(identifier string) (string, *domain.Project, error)
	ResolveIndex(index int) (string, *domain.Project, error)

	// Lifecycle
	AllocateNextIndex() (int, error)
	CreateProject(name string) (string, *domain.Project, error)
	ListProjects() ([]domain.ProjectSummary, error)

	// Whole-unit persistence
	Load(path string) (*domain.Project, error)
	Save(path string, p *domain.Project) error
}

// StateStore persists the primary project and the project counter
type StateStore interface {
	Load() (domain.Configuration, error)
	Save(cfg domain.Configuration) error
}
