package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"funknotes/internal/application"
	"funknotes/internal/domain"
	"funknotes/internal/ports"
)

// StateFileName is the file holding the primary project and counter
const StateFileName = "state.yaml"

type stateRecord struct {
	PrimaryProject int `yaml:"primary_project"`
	ProjectCounter int `yaml:"project_counter"`
}

// StateStore implements ports.StateStore as a small YAML file
type StateStore struct {
	path string
}

// Ensure StateStore implements ports.StateStore
var _ ports.StateStore = (*StateStore)(nil)

// NewStateStore creates a state store backed by path
func NewStateStore(path string) *StateStore {
	return &StateStore{path: ExpandHome(path)}
}

// Path returns the file location
func (s *StateStore) Path() string {
	return s.path
}

// Load reads the state. A missing file yields the default state.
func (s *StateStore) Load() (domain.Configuration, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfiguration(), nil
	}
	if err != nil {
		return domain.Configuration{}, fmt.Errorf("failed to read state: %w", err)
	}

	rec := stateRecord{PrimaryProject: domain.NoPrimary}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return domain.Configuration{}, &application.CorruptError{Path: s.path, Reason: err.Error()}
	}

	cfg := domain.Configuration{
		PrimaryProject: rec.PrimaryProject,
		ProjectCounter: rec.ProjectCounter,
	}
	if cfg.PrimaryProject < 0 {
		cfg.PrimaryProject = domain.NoPrimary
	}
	if cfg.ProjectCounter < 0 {
		cfg.ProjectCounter = 0
	}
	return cfg, nil
}

// Save writes the state atomically
func (s *StateStore) Save(cfg domain.Configuration) error {
	rec := stateRecord{
		PrimaryProject: cfg.PrimaryProject,
		ProjectCounter: cfg.ProjectCounter,
	}
	return WriteFileAtomic(s.path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode state: %w", err)
		}
		return enc.Close()
	})
}
