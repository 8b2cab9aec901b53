// Package fixture loads project collections from YAML documents.
package fixture

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/project"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage/memory"
)

//go:embed projects.yaml
var defaultDocument []byte

type document struct {
	Projects []project.Project `yaml:"projects"`
}

// Decode reads a YAML document with a top-level `projects` list. Unknown
// keys are rejected so typos in field names surface at load time.
func Decode(r io.Reader) ([]project.Project, error) {
	if r == nil {
		return nil, fmt.Errorf("fixture reader is required")
	}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return []project.Project{}, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := project.ValidateCollection(doc.Projects); err != nil {
		return nil, fmt.Errorf("validate fixture: %w", err)
	}
	if doc.Projects == nil {
		doc.Projects = []project.Project{}
	}
	return doc.Projects, nil
}

// Default returns the embedded collection.
func Default() ([]project.Project, error) {
	return Decode(bytes.NewReader(defaultDocument))
}

// Load reads the collection at path, or the embedded collection when path is
// blank.
func Load(path string) ([]project.Project, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	projects, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load fixture %s: %w", path, err)
	}
	return projects, nil
}

// Open loads a collection and serves it from an in-memory store.
func Open(path string) (*memory.Store, error) {
	projects, err := Load(path)
	if err != nil {
		return nil, err
	}
	return memory.New(projects)
}
