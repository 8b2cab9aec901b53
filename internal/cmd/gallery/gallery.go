// Package gallery parses gallery service flags and launches the service.
package gallery

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	entrypoint "github.com/louisbranch/portfolio.gallery/internal/platform/cmd"
	galleryservice "github.com/louisbranch/portfolio.gallery/internal/services/gallery"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage/fixture"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage/sqlite"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/view"
)

// Config holds gallery command configuration.
type Config struct {
	HTTPAddr    string   `env:"PORTFOLIO_GALLERY_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath      string   `env:"PORTFOLIO_GALLERY_DB_PATH"`
	FixturePath string   `env:"PORTFOLIO_GALLERY_FIXTURE_PATH"`
	Skills      []string `env:"PORTFOLIO_GALLERY_SKILLS" envSeparator:","`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Skills) == 0 {
		cfg.Skills = append([]string(nil), view.DefaultSkills...)
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite project store path (empty serves the fixture)")
	fs.StringVar(&cfg.FixturePath, "fixture", cfg.FixturePath, "YAML project fixture path (empty uses the embedded fixture)")
	fs.Func("skills", "comma-separated filter skills (default "+strings.Join(cfg.Skills, ",")+")", func(value string) error {
		cfg.Skills = splitSkills(value)
		return nil
	})
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func splitSkills(value string) []string {
	var skills []string
	for _, skill := range strings.Split(value, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

// Run starts the gallery HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGallery, func(ctx context.Context) error {
		projects, closeProjects, err := openProjects(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeProjects()

		srv, err := galleryservice.NewServer(ctx, galleryservice.Config{
			HTTPAddr: cfg.HTTPAddr,
			Projects: projects,
			Skills:   cfg.Skills,
		})
		if err != nil {
			return err
		}
		defer srv.Close()
		return srv.ListenAndServe(ctx)
	})
}

// openProjects selects the SQLite store when a database path is configured
// and the fixture store otherwise.
func openProjects(ctx context.Context, cfg Config) (storage.ProjectReader, func(), error) {
	if dbPath := strings.TrimSpace(cfg.DBPath); dbPath != "" {
		store, err := sqlite.Open(ctx, dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open project store: %w", err)
		}
		log.Printf("serving projects from sqlite path=%s", dbPath)
		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("close project store: %v", err)
			}
		}, nil
	}
	store, err := fixture.Open(cfg.FixturePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open project fixture: %w", err)
	}
	source := strings.TrimSpace(cfg.FixturePath)
	if source == "" {
		source = "embedded"
	}
	log.Printf("serving projects from fixture source=%s", source)
	return store, func() {}, nil
}
