// Package storage declares persistence interfaces for site-owned data:
// per-visitor display preferences and section view counts.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// PreferenceStore persists per-visitor display preferences. A missing theme
// is reported with ErrNotFound so callers can fall back to the default.
type PreferenceStore interface {
	PutTheme(ctx context.Context, visitorID, theme string) error
	GetTheme(ctx context.Context, visitorID string) (string, error)
}

// SectionViewStore accumulates viewport section view counts.
type SectionViewStore interface {
	RecordSectionView(ctx context.Context, section string) error
	SectionViews(ctx context.Context, section string) (int64, error)
}
