package ports

import "funknotes/internal/domain"

// ProjectCodec reads and writes one project storage unit.
// Save replaces the whole unit; there are no partial writes.
type ProjectCodec interface {
	// Load fails with application.ErrNotFound when the unit is missing and
	// application.ErrCorruptFormat when it cannot be parsed
	Load(path string) (*domain.Project, error)
	Save(path string, p *domain.Project) error

	// Extension is the file suffix the codec owns, including the dot
	Extension() string
	// Format is the name used in settings (json, text, sqlite)
	Format() string
}
