// Package sqlite provides SQLite-backed persistence for site data.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Maze77-AH/portfolio/internal/platform/storage/sqlitemigrate"
	"github.com/Maze77-AH/portfolio/internal/services/site/storage"
	"github.com/Maze77-AH/portfolio/internal/services/site/storage/sqlite/migrations"
)

// Store provides SQLite-backed persistence for visitor preferences and
// section view counts.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a site SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutTheme upserts the visitor's theme preference.
func (s *Store) PutTheme(ctx context.Context, visitorID, theme string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return fmt.Errorf("visitor id is required")
	}
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return fmt.Errorf("theme is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO preferences (visitor_id, theme, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(visitor_id) DO UPDATE SET
		    theme = excluded.theme,
		    updated_at = excluded.updated_at`,
		visitorID,
		theme,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put theme: %w", err)
	}
	return nil
}

// GetTheme loads the visitor's theme preference, ErrNotFound when absent.
func (s *Store) GetTheme(ctx context.Context, visitorID string) (string, error) {
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return "", fmt.Errorf("visitor id is required")
	}

	var theme string
	row := s.sqlDB.QueryRowContext(ctx, `SELECT theme FROM preferences WHERE visitor_id = ?`, visitorID)
	if err := row.Scan(&theme); err != nil {
		if err == sql.ErrNoRows {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("get theme: %w", err)
	}
	return theme, nil
}

// RecordSectionView increments the view count for a page section.
func (s *Store) RecordSectionView(ctx context.Context, section string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	section = strings.TrimSpace(section)
	if section == "" {
		return fmt.Errorf("section is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO section_views (section, views, updated_at)
		 VALUES (?, 1, ?)
		 ON CONFLICT(section) DO UPDATE SET
		    views = views + 1,
		    updated_at = excluded.updated_at`,
		section,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record section view: %w", err)
	}
	return nil
}

// SectionViews returns the accumulated view count for a section; zero when
// the section has never been seen.
func (s *Store) SectionViews(ctx context.Context, section string) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	section = strings.TrimSpace(section)
	if section == "" {
		return 0, fmt.Errorf("section is required")
	}

	var views int64
	row := s.sqlDB.QueryRowContext(ctx, `SELECT views FROM section_views WHERE section = ?`, section)
	if err := row.Scan(&views); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("section views: %w", err)
	}
	return views, nil
}
