// Package memory provides an in-memory project provider.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/project"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage"
)

// Store keeps projects in insertion order.
type Store struct {
	mu       sync.RWMutex
	projects []project.Project
	index    map[string]int
}

// New returns a store seeded with projects. Ids must be unique.
func New(projects []project.Project) (*Store, error) {
	if err := project.ValidateCollection(projects); err != nil {
		return nil, fmt.Errorf("seed memory store: %w", err)
	}
	s := &Store{
		projects: project.CloneAll(projects),
		index:    make(map[string]int, len(projects)),
	}
	for idx, p := range s.projects {
		s.index[p.ID] = idx
	}
	return s, nil
}

// ListProjects returns a copy of every project in insertion order.
func (s *Store) ListProjects(ctx context.Context) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := project.CloneAll(s.projects)
	if out == nil {
		out = []project.Project{}
	}
	return out, nil
}

// GetProject returns one project by id.
func (s *Store) GetProject(ctx context.Context, projectID string) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}
	if s == nil {
		return project.Project{}, fmt.Errorf("storage is not configured")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.index[strings.TrimSpace(projectID)]
	if !ok {
		return project.Project{}, storage.ErrNotFound
	}
	return s.projects[idx].Clone(), nil
}

// PutProject appends one project.
func (s *Store) PutProject(ctx context.Context, p project.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := p.ID
	if err := project.ValidateID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[id]; ok {
		return storage.ErrAlreadyExists
	}
	s.index[id] = len(s.projects)
	s.projects = append(s.projects, p.Clone())
	return nil
}

var _ storage.ProjectStore = (*Store)(nil)
