package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"funknotes/internal/application"
	"funknotes/internal/domain"
)

// memStore is an in-memory ports.ProjectStore. Projects are cloned on the
// way in and out so a command that skips Save leaves no trace.
type memStore struct {
	paths    []string
	projects map[string]*domain.Project
	removed  []string
	saves    int
	saveErr  error
	state    *memState
}

func newMemStore(state *memState) *memStore {
	return &memStore{projects: make(map[string]*domain.Project), state: state}
}

func (s *memStore) put(p *domain.Project) string {
	path := fmt.Sprintf("%d_%s.json", p.Index, p.Name)
	if _, ok := s.projects[path]; !ok {
		s.paths = append(s.paths, path)
	}
	s.projects[path] = cloneProject(p)
	if p.Index > s.state.cfg.ProjectCounter {
		s.state.cfg.ProjectCounter = p.Index
	}
	return path
}

func (s *memStore) get(name string) *domain.Project {
	for _, path := range s.paths {
		if p := s.projects[path]; p.Name == name {
			return p
		}
	}
	return nil
}

func (s *memStore) ListEntries() ([]string, error) {
	return append([]string(nil), s.paths...), nil
}

func (s *memStore) RemoveEntry(path string) error {
	if _, ok := s.projects[path]; !ok {
		return &application.NotFoundError{Kind: "project file", Name: path}
	}
	delete(s.projects, path)
	for i, p := range s.paths {
		if p == path {
			s.paths = append(s.paths[:i], s.paths[i+1:]...)
			break
		}
	}
	s.removed = append(s.removed, path)
	return nil
}

func (s *memStore) Resolve(identifier string) (string, *domain.Project, error) {
	if n, err := strconv.Atoi(identifier); err == nil && !strings.HasPrefix(identifier, "-") {
		return s.ResolveIndex(n)
	}
	for _, path := range s.paths {
		if p := s.projects[path]; p.Name == identifier {
			return path, cloneProject(p), nil
		}
	}
	return "", nil, &application.NotFoundError{Kind: "project", Name: identifier}
}

func (s *memStore) ResolveIndex(index int) (string, *domain.Project, error) {
	for _, path := range s.paths {
		if p := s.projects[path]; p.Index == index {
			return path, cloneProject(p), nil
		}
	}
	return "", nil, &application.NotFoundError{Kind: "project", Name: strconv.Itoa(index)}
}

func (s *memStore) AllocateNextIndex() (int, error) {
	return s.state.cfg.NextIndex(), nil
}

func (s *memStore) CreateProject(name string) (string, *domain.Project, error) {
	index, _ := s.AllocateNextIndex()
	p := domain.NewProject(name, index)
	return s.put(p), p, nil
}

func (s *memStore) ListProjects() ([]domain.ProjectSummary, error) {
	var out []domain.ProjectSummary
	for _, path := range s.paths {
		p := s.projects[path]
		out = append(out, domain.ProjectSummary{Index: p.Index, Name: p.Name, Path: path, ObjectCount: len(p.Objects)})
	}
	return out, nil
}

func (s *memStore) Load(path string) (*domain.Project, error) {
	p, ok := s.projects[path]
	if !ok {
		return nil, &application.NotFoundError{Kind: "project file", Name: path}
	}
	return cloneProject(p), nil
}

func (s *memStore) Save(path string, p *domain.Project) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	if _, ok := s.projects[path]; !ok {
		s.paths = append(s.paths, path)
	}
	s.projects[path] = cloneProject(p)
	return nil
}

type memState struct {
	cfg   domain.Configuration
	saves int
}

func (s *memState) Load() (domain.Configuration, error) {
	return s.cfg, nil
}

func (s *memState) Save(cfg domain.Configuration) error {
	s.saves++
	s.cfg = cfg
	return nil
}

// scriptedPrompt answers questions in order and records them. When the
// script runs out it answers with the default.
type scriptedPrompt struct {
	answers   []bool
	questions []string
}

func (p *scriptedPrompt) Ask(question string, defaultYes bool) bool {
	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return defaultYes
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a
}

func cloneProject(p *domain.Project) *domain.Project {
	c := &domain.Project{Name: p.Name, Index: p.Index}
	for _, o := range p.Objects {
		c.Objects = append(c.Objects, &domain.Object{
			Name:    o.Name,
			Items:   append([]domain.Item(nil), o.Items...),
			History: append([]domain.HistoryEntry(nil), o.History...),
		})
	}
	return c
}

var testTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)

// newTestWorkspace returns a workspace with no primary project, a fixed
// clock and no prompter.
func newTestWorkspace() (*Workspace, *memStore, *memState) {
	state := &memState{cfg: domain.DefaultConfiguration()}
	store := newMemStore(state)
	ws := NewWorkspace(store, state, nil)
	ws.Clock = domain.FixedClock{T: testTime}
	return ws, store, state
}

// seedProject stores a project holding objects with the given item texts
// and makes it primary when primary is true.
func seedProject(store *memStore, state *memState, name string, index int, primary bool, objects map[string][]string, order ...string) {
	p := domain.NewProject(name, index)
	for _, objName := range order {
		obj, _ := p.AddObject(objName)
		for _, text := range objects[objName] {
			obj.AppendItem(text, "2024-01-01 00:00:00")
		}
	}
	store.put(p)
	if primary {
		state.cfg.PrimaryProject = index
	}
}

var errDiskFull = errors.New("disk full")
