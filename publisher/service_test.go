package publisher

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/novaweb/go-sitebuilder/internal/identity"
	"github.com/novaweb/go-sitebuilder/preview"
	"github.com/novaweb/go-sitebuilder/siteconfig"
)

func buildClock() time.Time {
	return time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
}

func newTestService(writer *MemoryWriter, opts ...Option) *Service {
	renderer := preview.New(preview.WithClock(buildClock))
	opts = append([]Option{WithClock(buildClock)}, opts...)
	return New(renderer, writer, opts...)
}

func testConfig(t *testing.T) siteconfig.SiteConfig {
	t.Helper()
	gen := identity.Deterministic("publisher-test")
	cfg := siteconfig.Starter(gen)
	cfg, _ = siteconfig.AddPage(cfg, gen, "À Propos")
	return cfg
}

func TestBuildWritesOneDocumentPerPagePlusManifest(t *testing.T) {
	writer := NewMemoryWriter()
	cfg := testConfig(t)

	result, err := newTestService(writer).Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	wantPaths := []string{"a-propos/index.html", "index.html", "site.json"}
	gotPaths := writer.Paths()
	if len(gotPaths) != len(wantPaths) {
		t.Fatalf("expected %v, got %v", wantPaths, gotPaths)
	}
	for i, want := range wantPaths {
		if gotPaths[i] != want {
			t.Fatalf("expected %v, got %v", wantPaths, gotPaths)
		}
	}

	if len(result.Manifest.Pages) != 2 {
		t.Fatalf("expected two page artifacts, got %d", len(result.Manifest.Pages))
	}
	home := result.Manifest.Pages[0]
	if home.Slug != "index" || home.Path != "index.html" {
		t.Fatalf("unexpected home artifact: %+v", home)
	}
	if !strings.HasPrefix(home.Checksum, "sha256:") {
		t.Fatalf("expected sha256 checksum, got %q", home.Checksum)
	}

	body, _ := writer.File("index.html")
	if !strings.Contains(string(body), "Bienvenue sur votre site") {
		t.Fatal("home document must contain the rendered hero")
	}
}

func TestBuildManifestIsValidJSON(t *testing.T) {
	writer := NewMemoryWriter()
	cfg := testConfig(t)

	if _, err := newTestService(writer).Build(context.Background(), cfg); err != nil {
		t.Fatalf("build: %v", err)
	}

	raw, ok := writer.File("site.json")
	if !ok {
		t.Fatal("expected manifest artifact")
	}
	var manifest Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		t.Fatalf("manifest must round trip: %v", err)
	}
	if manifest.SiteName != "Mon Site Web" {
		t.Fatalf("unexpected site name %q", manifest.SiteName)
	}
	if !manifest.GeneratedAt.Equal(buildClock()) {
		t.Fatalf("manifest timestamp must come from the injected clock, got %v", manifest.GeneratedAt)
	}
}

func TestBuildIsDeterministicUnderPinnedClock(t *testing.T) {
	cfg := testConfig(t)

	first := NewMemoryWriter()
	second := NewMemoryWriter()
	if _, err := newTestService(first).Build(context.Background(), cfg); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := newTestService(second).Build(context.Background(), cfg); err != nil {
		t.Fatalf("second build: %v", err)
	}

	for _, path := range first.Paths() {
		a, _ := first.File(path)
		b, ok := second.File(path)
		if !ok || !bytes.Equal(a, b) {
			t.Fatalf("artifact %s differs between identical builds", path)
		}
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	writer := NewMemoryWriter()
	cfg := siteconfig.SiteConfig{SiteName: "Mon Site"}

	if _, err := newTestService(writer).Build(context.Background(), cfg); err == nil {
		t.Fatal("expected validation failure for a config without pages")
	}
	if len(writer.Paths()) != 0 {
		t.Fatal("a rejected build must produce no artifacts")
	}
}

func TestBuildManifestURLs(t *testing.T) {
	writer := NewMemoryWriter()
	cfg := testConfig(t)

	service := newTestService(writer, WithRoutes(NewRoutes("https://example.com")))
	result, err := service.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got := result.Manifest.Pages[0].URL; got != "https://example.com/" {
		t.Fatalf("unexpected home URL %q", got)
	}
	if got := result.Manifest.Pages[1].URL; got != "https://example.com/a-propos/" {
		t.Fatalf("unexpected page URL %q", got)
	}
}

func TestExportProducesReadableArchive(t *testing.T) {
	cfg := testConfig(t)
	service := newTestService(NewMemoryWriter())

	var buf bytes.Buffer
	result, err := service.Export(context.Background(), cfg, &buf)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(result.Manifest.Pages) != 2 {
		t.Fatalf("expected two page artifacts, got %d", len(result.Manifest.Pages))
	}

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	names := map[string]bool{}
	for _, file := range reader.File {
		names[file.Name] = true
	}
	for _, want := range []string{"index.html", "a-propos/index.html", "site.json"} {
		if !names[want] {
			t.Fatalf("expected %s in archive, got %v", want, names)
		}
	}
}

func TestPageSlugFallsBackToPageID(t *testing.T) {
	page := siteconfig.PageConfig{ID: "page-9", Name: "!!!", Type: siteconfig.PageTypeCustom}
	if got := PageSlug(page); got != "page-9" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}

func TestPageSlugCollisionsGetSuffixes(t *testing.T) {
	pages := []siteconfig.PageConfig{
		{ID: "p1", Name: "Contact", Type: siteconfig.PageTypeCustom},
		{ID: "p2", Name: "Contact", Type: siteconfig.PageTypeCustom},
	}
	slugs := pageSlugs(pages)
	if slugs["p1"] == slugs["p2"] {
		t.Fatalf("colliding names must get distinct slugs, both %q", slugs["p1"])
	}
	if slugs["p2"] != "contact-2" {
		t.Fatalf("expected suffixed slug, got %q", slugs["p2"])
	}
}
