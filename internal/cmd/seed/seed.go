// Package seed loads a project fixture into the gallery SQLite store.
package seed

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	entrypoint "github.com/louisbranch/portfolio.gallery/internal/platform/cmd"
	"github.com/louisbranch/portfolio.gallery/internal/platform/config"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage/fixture"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath      string `env:"PORTFOLIO_GALLERY_DB_PATH" envDefault:"data/gallery.db"`
	FixturePath string `env:"PORTFOLIO_GALLERY_FIXTURE_PATH"`
	Verbose     bool   `env:"PORTFOLIO_GALLERY_SEED_VERBOSE"`
}

// ParseConfig parses the process environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return bindFlags(fs, args, cfg)
}

// ParseConfigFrom parses environment values from environment instead of the
// process environment, then applies flags.
func ParseConfigFrom(fs *flag.FlagSet, args []string, environment map[string]string) (Config, error) {
	var cfg Config
	if err := config.ParseEnvFrom(&cfg, environment); err != nil {
		return Config{}, err
	}
	return bindFlags(fs, args, cfg)
}

func bindFlags(fs *flag.FlagSet, args []string, cfg Config) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite project store path")
	fs.StringVar(&cfg.FixturePath, "fixture", cfg.FixturePath, "YAML project fixture path (empty uses the embedded fixture)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Result reports what one seed run did.
type Result struct {
	Inserted int
	Skipped  int
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		_, err := Seed(ctx, cfg, out)
		return err
	})
}

// Seed writes every fixture project into the store in fixture order. Projects
// already present are skipped so repeated runs are safe.
func Seed(ctx context.Context, cfg Config, out io.Writer) (Result, error) {
	if out == nil {
		out = io.Discard
	}
	dbPath := strings.TrimSpace(cfg.DBPath)
	if dbPath == "" {
		return Result{}, errors.New("db path is required")
	}
	projects, err := fixture.Load(cfg.FixturePath)
	if err != nil {
		return Result{}, fmt.Errorf("fixture unreadable: %w", err)
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("create db directory: %w", err)
		}
	}
	store, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return Result{}, fmt.Errorf("open project store: %w", err)
	}
	defer store.Close()

	var result Result
	for _, p := range projects {
		err := store.PutProject(ctx, p)
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			result.Skipped++
			if cfg.Verbose {
				fmt.Fprintf(out, "skip %s: already seeded\n", p.ID)
			}
		case err != nil:
			return result, fmt.Errorf("put project %q: %w", p.ID, err)
		default:
			result.Inserted++
			if cfg.Verbose {
				fmt.Fprintf(out, "seeded %s: %s\n", p.ID, p.Title)
			}
		}
	}
	fmt.Fprintf(out, "seeded %d projects (%d already present) into %s\n", result.Inserted, result.Skipped, dbPath)
	return result, nil
}
