package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/novaweb/go-sitebuilder/dashboard"
	"github.com/novaweb/go-sitebuilder/internal/identity"
	"github.com/novaweb/go-sitebuilder/media"
	"github.com/novaweb/go-sitebuilder/preview"
	"github.com/novaweb/go-sitebuilder/publisher"
	"github.com/novaweb/go-sitebuilder/siteconfig"
	"github.com/novaweb/go-sitebuilder/store"
)

func apiClock() time.Time {
	return time.Date(2025, time.May, 5, 10, 0, 0, 0, time.UTC)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	renderer := preview.New(preview.WithClock(apiClock))
	pub := publisher.New(renderer, publisher.NewMemoryWriter(), publisher.WithClock(apiClock))
	session := dashboard.NewSession(renderer,
		dashboard.WithGenerator(identity.Deterministic("httpapi-test")),
		dashboard.WithStore(store.NewMemoryStore(), store.DefaultSiteKey),
		dashboard.WithPublisher(pub),
		dashboard.WithUploader(media.NewDataURIUploader(0)),
	)
	return New(session)
}

func TestGetSiteConfig(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest(http.MethodGet, "/api/cms/site-config/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var envelope struct {
		Config siteconfig.SiteConfig `json:"config"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Config.SiteName != "Mon Site Web" {
		t.Fatalf("unexpected config: %+v", envelope.Config)
	}
}

func TestUpdateSiteConfigRoundTrip(t *testing.T) {
	server := newTestServer(t)

	gen := identity.Deterministic("update-test")
	cfg := siteconfig.Starter(gen)
	cfg.SiteName = "Boutique Laurent"
	body, err := json.Marshal(map[string]any{"config": cfg})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/cms/site-config/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.App().Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	resp, err = server.App().Test(httptest.NewRequest(http.MethodGet, "/api/cms/site-config/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var envelope struct {
		Config siteconfig.SiteConfig `json:"config"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Config.SiteName != "Boutique Laurent" {
		t.Fatalf("expected updated config, got %q", envelope.Config.SiteName)
	}
}

func TestUpdateSiteConfigRejectsInvalidDocument(t *testing.T) {
	server := newTestServer(t)

	body := []byte(`{"config":{"siteName":"X","pages":[]}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/cms/site-config/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.App().Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestPublishReturnsFilesAndTimestamp(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest(http.MethodPost, "/api/cms/publish/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Files       map[string]string `json:"files"`
		PublishedAt string            `json:"published_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := payload.Files["index.html"]; !ok {
		t.Fatalf("expected home document in files, got %v", payload.Files)
	}
	if payload.PublishedAt != "2025-05-05T10:00:00Z" {
		t.Fatalf("unexpected timestamp %q", payload.PublishedAt)
	}
}

func TestExportStreamsZip(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest(http.MethodGet, "/api/cms/export/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/zip" {
		t.Fatalf("expected zip content type, got %q", got)
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(body, []byte("PK")) {
		t.Fatal("expected zip magic bytes")
	}
}

func TestUploadImageReturnsURL(t *testing.T) {
	server := newTestServer(t)

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, err := writer.CreateFormFile("file", "logo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte{0x89, 0x50, 0x4e, 0x47}); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/cms/upload-image/", &form)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := server.App().Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(payload.URL, "data:image/png;base64,") {
		t.Fatalf("unexpected url %q", payload.URL)
	}
}

func TestPreviewReturnsHTML(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest(http.MethodGet, "/api/cms/preview/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Bienvenue sur votre site") {
		t.Fatal("expected rendered home page")
	}
}

func TestImportPageEndpoint(t *testing.T) {
	server := newTestServer(t)

	source := "---\ntitle: Histoire\n---\n\n# Notre Histoire\n\nDepuis 1987.\n"
	req := httptest.NewRequest(http.MethodPost, "/api/cms/pages/import/", strings.NewReader(source))
	req.Header.Set("Content-Type", "text/markdown")
	resp, err := server.App().Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var payload struct {
		Page siteconfig.PageConfig `json:"page"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Page.Name != "Histoire" {
		t.Fatalf("unexpected page %+v", payload.Page)
	}
}
