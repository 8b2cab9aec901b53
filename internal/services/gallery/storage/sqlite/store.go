// Package sqlite provides a SQLite-backed project provider.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/portfolio.gallery/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/portfolio.gallery/internal/platform/timeouts"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/project"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage"
	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists gallery projects in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite project store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + fmt.Sprintf(
		"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		timeouts.StoreBusy.Milliseconds(),
	)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutProject appends one project after the current last position.
func (s *Store) PutProject(ctx context.Context, p project.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := p.ID
	if err := project.ValidateID(id); err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put project: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO projects (
		   id, position, title, owner_name, owner_avatar_url,
		   avg_rating, review_count, cover_hint, created_at
		 ) VALUES (
		   ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM projects), ?, ?, ?, ?, ?, ?, ?
		 )`,
		id,
		p.Title,
		p.Owner.Name,
		p.Owner.AvatarURL,
		p.AvgRating,
		p.ReviewCount,
		p.CoverHint,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		if isProjectUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert project: %w", err)
	}
	for idx, url := range p.MediaURLs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project_media (project_id, position, url) VALUES (?, ?, ?)`,
			id, idx, url,
		); err != nil {
			return fmt.Errorf("insert project media: %w", err)
		}
	}
	for idx, tag := range p.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project_tags (project_id, position, tag) VALUES (?, ?, ?)`,
			id, idx, tag,
		); err != nil {
			return fmt.Errorf("insert project tag: %w", err)
		}
	}
	for idx, review := range p.Reviews {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project_reviews (project_id, position, review_id, author, rating, comment)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, idx, review.ID, review.Author, review.Rating, review.Comment,
		); err != nil {
			return fmt.Errorf("insert project review: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put project: %w", err)
	}
	return nil
}

// ListProjects returns every project in insertion order.
func (s *Store) ListProjects(ctx context.Context) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, title, owner_name, owner_avatar_url, avg_rating, review_count, cover_hint
		   FROM projects
		  ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	index := map[string]int{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if err := s.attachChildren(ctx, projects, index, ""); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns one project by id.
func (s *Store) GetProject(ctx context.Context, projectID string) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}
	if s == nil || s.sqlDB == nil {
		return project.Project{}, fmt.Errorf("storage is not configured")
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return project.Project{}, project.ErrMissingID
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, title, owner_name, owner_avatar_url, avg_rating, review_count, cover_hint
		   FROM projects
		  WHERE id = ?`,
		projectID,
	)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return project.Project{}, storage.ErrNotFound
		}
		return project.Project{}, fmt.Errorf("get project: %w", err)
	}
	projects := []project.Project{p}
	if err := s.attachChildren(ctx, projects, map[string]int{p.ID: 0}, p.ID); err != nil {
		return project.Project{}, err
	}
	return projects[0], nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Owner.Name,
		&p.Owner.AvatarURL,
		&p.AvgRating,
		&p.ReviewCount,
		&p.CoverHint,
	)
	return p, err
}

// attachChildren loads media, tags and reviews for the indexed projects.
// An empty onlyID loads children for every project.
func (s *Store) attachChildren(ctx context.Context, projects []project.Project, index map[string]int, onlyID string) error {
	where, args := "", []any{}
	if onlyID != "" {
		where, args = " WHERE project_id = ?", []any{onlyID}
	}

	if err := s.eachRow(ctx, `SELECT project_id, url FROM project_media`+where+` ORDER BY project_id, position`, args,
		func(rows *sql.Rows) error {
			var id, url string
			if err := rows.Scan(&id, &url); err != nil {
				return err
			}
			if idx, ok := index[id]; ok {
				projects[idx].MediaURLs = append(projects[idx].MediaURLs, url)
			}
			return nil
		}); err != nil {
		return fmt.Errorf("load project media: %w", err)
	}

	if err := s.eachRow(ctx, `SELECT project_id, tag FROM project_tags`+where+` ORDER BY project_id, position`, args,
		func(rows *sql.Rows) error {
			var id, tag string
			if err := rows.Scan(&id, &tag); err != nil {
				return err
			}
			if idx, ok := index[id]; ok {
				projects[idx].Tags = append(projects[idx].Tags, tag)
			}
			return nil
		}); err != nil {
		return fmt.Errorf("load project tags: %w", err)
	}

	if err := s.eachRow(ctx, `SELECT project_id, review_id, author, rating, comment FROM project_reviews`+where+` ORDER BY project_id, position`, args,
		func(rows *sql.Rows) error {
			var id string
			var review project.Review
			if err := rows.Scan(&id, &review.ID, &review.Author, &review.Rating, &review.Comment); err != nil {
				return err
			}
			if idx, ok := index[id]; ok {
				projects[idx].Reviews = append(projects[idx].Reviews, review)
			}
			return nil
		}); err != nil {
		return fmt.Errorf("load project reviews: %w", err)
	}
	return nil
}

func (s *Store) eachRow(ctx context.Context, query string, args []any, fn func(*sql.Rows) error) error {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func isProjectUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "projects.id")
}

var _ storage.ProjectStore = (*Store)(nil)
