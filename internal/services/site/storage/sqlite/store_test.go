package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Maze77-AH/portfolio/internal/services/site/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestThemeRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.GetTheme(ctx, "visitor-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetTheme before put: err = %v, want ErrNotFound", err)
	}

	if err := store.PutTheme(ctx, "visitor-1", "dark"); err != nil {
		t.Fatalf("put theme: %v", err)
	}
	theme, err := store.GetTheme(ctx, "visitor-1")
	if err != nil {
		t.Fatalf("get theme: %v", err)
	}
	if theme != "dark" {
		t.Fatalf("theme = %q, want %q", theme, "dark")
	}

	// Upsert replaces the stored value.
	if err := store.PutTheme(ctx, "visitor-1", "light"); err != nil {
		t.Fatalf("update theme: %v", err)
	}
	theme, err = store.GetTheme(ctx, "visitor-1")
	if err != nil {
		t.Fatalf("get updated theme: %v", err)
	}
	if theme != "light" {
		t.Fatalf("theme = %q, want %q", theme, "light")
	}
}

func TestThemeValidation(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutTheme(ctx, "", "dark"); err == nil {
		t.Fatal("expected error for blank visitor id")
	}
	if err := store.PutTheme(ctx, "visitor-1", " "); err == nil {
		t.Fatal("expected error for blank theme")
	}
	if _, err := store.GetTheme(ctx, ""); err == nil {
		t.Fatal("expected error for blank visitor id")
	}
}

func TestSectionViewsAccumulate(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	views, err := store.SectionViews(ctx, "projects")
	if err != nil {
		t.Fatalf("section views: %v", err)
	}
	if views != 0 {
		t.Fatalf("views = %d, want 0", views)
	}

	for i := 0; i < 3; i++ {
		if err := store.RecordSectionView(ctx, "projects"); err != nil {
			t.Fatalf("record view %d: %v", i, err)
		}
	}

	views, err = store.SectionViews(ctx, "projects")
	if err != nil {
		t.Fatalf("section views: %v", err)
	}
	if views != 3 {
		t.Fatalf("views = %d, want 3", views)
	}
}

func TestNilStoreGuards(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
	if err := store.PutTheme(context.Background(), "v", "dark"); err == nil {
		t.Fatal("expected error from nil store")
	}
}
