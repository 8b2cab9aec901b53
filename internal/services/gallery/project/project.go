// Package project defines the read-only portfolio project records consumed by
// the gallery listing.
package project

import (
	"errors"
	"fmt"
	"strings"
)

// Project is one student portfolio entry.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	MediaURLs   []string `json:"mediaUrls" yaml:"mediaUrls"`
	Owner       Owner    `json:"owner" yaml:"owner"`
	Tags        []string `json:"tags" yaml:"tags"`
	AvgRating   float64  `json:"avgRating" yaml:"avgRating"`
	ReviewCount int      `json:"reviewCount" yaml:"reviewCount"`
	Reviews     []Review `json:"reviews" yaml:"reviews"`
	// CoverHint is an optional description of the cover image subject.
	CoverHint string `json:"coverHint,omitempty" yaml:"coverHint,omitempty"`
}

// Owner identifies the student who owns a project.
type Owner struct {
	Name      string `json:"name" yaml:"name"`
	AvatarURL string `json:"avatarUrl" yaml:"avatarUrl"`
}

// Review is one piece of feedback left on a project.
type Review struct {
	ID      string `json:"id" yaml:"id"`
	Author  string `json:"author" yaml:"author"`
	Rating  int    `json:"rating" yaml:"rating"`
	Comment string `json:"comment" yaml:"comment"`
}

// ErrDuplicateID reports two projects sharing one identifier.
var ErrDuplicateID = errors.New("duplicate project id")

// ErrMissingID reports a project without an identifier.
var ErrMissingID = errors.New("project id is required")

// ErrInvalidID reports an identifier that cannot form a stable detail route.
var ErrInvalidID = errors.New("invalid project id")

// ValidateID rejects blank ids, ids with surrounding whitespace and the
// dot segments "." and "..", which routers collapse during path cleaning.
func ValidateID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return ErrMissingID
	case strings.TrimSpace(id) != id:
		return fmt.Errorf("%w %q: surrounding whitespace", ErrInvalidID, id)
	case id == "." || id == "..":
		return fmt.Errorf("%w %q: dot segment", ErrInvalidID, id)
	}
	return nil
}

// ValidateCollection checks the collection-level invariants: every project
// has a valid id and ids are unique. Rating consistency is not checked.
func ValidateCollection(projects []Project) error {
	seen := make(map[string]int, len(projects))
	for idx, p := range projects {
		id := p.ID
		if err := ValidateID(id); err != nil {
			return fmt.Errorf("project at position %d: %w", idx, err)
		}
		if previous, ok := seen[id]; ok {
			return fmt.Errorf("project %q at positions %d and %d: %w", id, previous, idx, ErrDuplicateID)
		}
		seen[id] = idx
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate provider-owned slices.
func (p Project) Clone() Project {
	out := p
	out.MediaURLs = cloneStrings(p.MediaURLs)
	out.Tags = cloneStrings(p.Tags)
	if p.Reviews != nil {
		out.Reviews = append([]Review(nil), p.Reviews...)
	}
	return out
}

// CloneAll deep-copies a collection preserving order.
func CloneAll(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	out := make([]Project, len(projects))
	for idx, p := range projects {
		out[idx] = p.Clone()
	}
	return out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string(nil), values...)
}
