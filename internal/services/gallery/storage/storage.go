// Package storage defines the read contracts for gallery project providers.
package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/project"
)

var (
	// ErrNotFound indicates a requested project is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a project id is already taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// ProjectReader supplies the ordered, read-only project collection.
// Returned values are copies; callers may not mutate provider state.
type ProjectReader interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
	GetProject(ctx context.Context, projectID string) (project.Project, error)
}

// ProjectWriter appends projects to a provider. Display order follows
// insertion order.
type ProjectWriter interface {
	PutProject(ctx context.Context, p project.Project) error
}

// ProjectStore combines read and write access.
type ProjectStore interface {
	ProjectReader
	ProjectWriter
}
