package store

import (
	"context"
	"errors"
	"testing"

	"github.com/novaweb/go-sitebuilder/internal/identity"
	"github.com/novaweb/go-sitebuilder/siteconfig"
)

func newSQLiteStore(t *testing.T) *BunStore {
	t.Helper()
	db, err := OpenDB(DriverSQLite, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := NewBunStore(db)
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return s
}

func TestBunStoreLoadMissingKey(t *testing.T) {
	s := newSQLiteStore(t)

	_, err := s.Load(context.Background(), "site-without-snapshot")
	var notFound *siteconfig.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBunStoreSaveThenLoad(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	gen := identity.Deterministic("bun-store-test")
	cfg := siteconfig.Starter(gen)

	if err := s.Save(ctx, "acme", cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := s.Load(ctx, "acme")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.SiteName != cfg.SiteName {
		t.Fatalf("expected %q, got %q", cfg.SiteName, loaded.SiteName)
	}
	if len(loaded.Pages) != 1 || len(loaded.Pages[0].Sections) != 2 {
		t.Fatalf("snapshot lost structure: %+v", loaded.Pages)
	}
	if _, ok := loaded.Pages[0].Sections[0].Content.(siteconfig.HeroContent); !ok {
		t.Fatalf("section content must decode to its typed payload, got %T", loaded.Pages[0].Sections[0].Content)
	}
}

func TestBunStoreSaveOverwritesPreviousSnapshot(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	gen := identity.Deterministic("bun-store-test")
	cfg := siteconfig.Starter(gen)

	if err := s.Save(ctx, "acme", cfg); err != nil {
		t.Fatalf("first save: %v", err)
	}

	cfg = siteconfig.RenamePage(cfg, "home", "Bienvenue")
	if err := s.Save(ctx, "acme", cfg); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := s.Load(ctx, "acme")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Pages[0].Name != "Bienvenue" {
		t.Fatalf("expected overwritten snapshot, got %q", loaded.Pages[0].Name)
	}
}

func TestBunStoreRejectsInvalidSnapshot(t *testing.T) {
	s := newSQLiteStore(t)
	if err := s.Save(context.Background(), "acme", siteconfig.SiteConfig{SiteName: "X"}); err == nil {
		t.Fatal("expected validation failure for a configuration without pages")
	}
}
