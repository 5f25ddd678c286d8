package dashboard

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	sitecmd "github.com/novaweb/go-sitebuilder/internal/commands/site"
	"github.com/novaweb/go-sitebuilder/internal/identity"
	"github.com/novaweb/go-sitebuilder/preview"
	"github.com/novaweb/go-sitebuilder/publisher"
	"github.com/novaweb/go-sitebuilder/siteconfig"
	"github.com/novaweb/go-sitebuilder/store"
)

var _ sitecmd.Editor = (*Session)(nil)

func sessionClock() time.Time {
	return time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)
}

type sessionFixture struct {
	session *Session
	store   *store.MemoryStore
	output  *publisher.MemoryWriter
}

func newFixture(opts ...Option) *sessionFixture {
	renderer := preview.New(preview.WithClock(sessionClock))
	memStore := store.NewMemoryStore()
	output := publisher.NewMemoryWriter()
	pub := publisher.New(renderer, output, publisher.WithClock(sessionClock))

	base := []Option{
		WithGenerator(identity.Deterministic("dashboard-test")),
		WithStore(memStore, store.DefaultSiteKey),
		WithPublisher(pub),
	}
	session := NewSession(renderer, append(base, opts...)...)
	return &sessionFixture{session: session, store: memStore, output: output}
}

func TestNewSessionStartsWithStarterConfig(t *testing.T) {
	f := newFixture()

	cfg := f.session.Config()
	if cfg.SiteName != "Mon Site Web" || len(cfg.Pages) != 1 {
		t.Fatalf("expected starter configuration, got %+v", cfg)
	}
	if f.session.ActivePageID() != "home" {
		t.Fatalf("expected home selected, got %q", f.session.ActivePageID())
	}
}

func TestLoadKeepsStarterWhenNoSnapshotExists(t *testing.T) {
	f := newFixture()

	if err := f.session.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.session.Config().SiteName != "Mon Site Web" {
		t.Fatal("missing snapshot must leave the starter configuration in place")
	}
}

func TestLoadReplacesDraftWithSnapshot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	gen := identity.Deterministic("saved-state")
	saved := siteconfig.Starter(gen)
	saved.SiteName = "Boulangerie Dupont"
	if err := f.store.Save(ctx, store.DefaultSiteKey, saved); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	if err := f.session.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.session.Config().SiteName != "Boulangerie Dupont" {
		t.Fatalf("expected loaded snapshot, got %q", f.session.Config().SiteName)
	}
}

func TestAddPageSelectsTheNewPage(t *testing.T) {
	f := newFixture()

	page, err := f.session.AddPage(context.Background(), "Contact")
	if err != nil {
		t.Fatalf("add page: %v", err)
	}
	if f.session.ActivePageID() != page.ID {
		t.Fatalf("expected new page selected, got %q", f.session.ActivePageID())
	}
}

func TestRemoveActivePageReselectsFirstPage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	page, err := f.session.AddPage(ctx, "Contact")
	if err != nil {
		t.Fatalf("add page: %v", err)
	}
	if err := f.session.RemovePage(ctx, page.ID); err != nil {
		t.Fatalf("remove page: %v", err)
	}
	if f.session.ActivePageID() != "home" {
		t.Fatalf("expected home reselected, got %q", f.session.ActivePageID())
	}
}

func TestRemoveLastPageFails(t *testing.T) {
	f := newFixture()

	err := f.session.RemovePage(context.Background(), "home")
	var minErr *siteconfig.MinimumPagesError
	if !errors.As(err, &minErr) {
		t.Fatalf("expected MinimumPagesError, got %v", err)
	}
}

func TestPreviewRendersActivePage(t *testing.T) {
	f := newFixture()

	doc := f.session.Preview()
	if !strings.Contains(doc, "Bienvenue sur votre site") {
		t.Fatal("preview must render the active page")
	}
}

func TestPublishSavesDraftAndBuilds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if err := f.session.RenamePage(ctx, "home", "Bienvenue"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	result, err := f.session.PublishResult(ctx)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(result.Manifest.Pages) != 1 {
		t.Fatalf("expected one published page, got %d", len(result.Manifest.Pages))
	}

	saved, err := f.store.Load(ctx, store.DefaultSiteKey)
	if err != nil {
		t.Fatalf("publish must persist the draft: %v", err)
	}
	if saved.Pages[0].Name != "Bienvenue" {
		t.Fatalf("persisted snapshot is stale: %q", saved.Pages[0].Name)
	}
	if _, ok := f.output.File("index.html"); !ok {
		t.Fatal("expected built home document")
	}
}

func TestPublishWithoutPublisherFails(t *testing.T) {
	renderer := preview.New(preview.WithClock(sessionClock))
	session := NewSession(renderer, WithGenerator(identity.Deterministic("dashboard-test")))

	if err := session.Publish(context.Background()); !errors.Is(err, ErrNoPublisher) {
		t.Fatalf("expected ErrNoPublisher, got %v", err)
	}
}

func TestExportStreamsArchive(t *testing.T) {
	f := newFixture()

	var buf bytes.Buffer
	if _, err := f.session.Export(context.Background(), &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected archive bytes")
	}
}

func TestImportPageAppendsAndSelects(t *testing.T) {
	f := newFixture()

	source := []byte("---\ntitle: Histoire\n---\n\n# Notre Histoire\n\nDepuis 1987.\n")
	page, err := f.session.ImportPage(context.Background(), source)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if f.session.ActivePageID() != page.ID {
		t.Fatal("imported page must be selected")
	}
	cfg := f.session.Config()
	if len(cfg.Pages) != 2 || cfg.Pages[1].Name != "Histoire" {
		t.Fatalf("imported page missing from draft: %+v", cfg.Pages)
	}
}

func TestReplaceValidatesIncomingConfig(t *testing.T) {
	f := newFixture()

	if err := f.session.Replace(context.Background(), siteconfig.SiteConfig{SiteName: "X"}); err == nil {
		t.Fatal("expected validation failure for a config without pages")
	}

	gen := identity.Deterministic("replace-test")
	incoming := siteconfig.Starter(gen)
	incoming.SiteName = "Nouveau Nom"
	if err := f.session.Replace(context.Background(), incoming); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if f.session.Config().SiteName != "Nouveau Nom" {
		t.Fatal("replace must swap the draft")
	}
}

func TestUploadImageWithoutUploaderFails(t *testing.T) {
	f := newFixture()

	_, err := f.session.UploadImage(context.Background(), "x.png", strings.NewReader("x"))
	if !errors.Is(err, ErrNoUploader) {
		t.Fatalf("expected ErrNoUploader, got %v", err)
	}
}

func TestEditFlowKeepsDraftValid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.session.AddPage(ctx, "Boutique"); err != nil {
		t.Fatalf("add page: %v", err)
	}
	pageID := f.session.ActivePageID()
	if err := f.session.AddSection(ctx, pageID, siteconfig.SectionTypeProducts); err != nil {
		t.Fatalf("add section: %v", err)
	}
	cfg := f.session.Config()
	sectionID := cfg.Pages[1].Sections[0].ID
	if err := f.session.AddProduct(ctx, pageID, sectionID); err != nil {
		t.Fatalf("add product: %v", err)
	}
	cfg = f.session.Config()
	productID := cfg.Pages[1].Sections[0].Content.(siteconfig.ProductsContent).Products[0].ID
	if err := f.session.UpdateProduct(ctx, pageID, sectionID, productID, siteconfig.ProductFieldTitle, "Baguette"); err != nil {
		t.Fatalf("update product: %v", err)
	}

	cfg = f.session.Config()
	if err := siteconfig.Validate(cfg); err != nil {
		t.Fatalf("draft must stay valid through edits: %v", err)
	}
	products := cfg.Pages[1].Sections[0].Content.(siteconfig.ProductsContent)
	if products.Products[0].Title != "Baguette" {
		t.Fatalf("expected updated product, got %+v", products.Products[0])
	}
}
