// Package publisher turns a site configuration into a static build: one HTML
// document per page, plus a machine-readable manifest describing the output.
// Rendering delegates to the preview engine so the published site is exactly
// what the editor previewed.
package publisher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/novaweb/go-sitebuilder/internal/logging"
	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
	"github.com/novaweb/go-sitebuilder/preview"
	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// ManifestPath is where the build manifest lands inside the output tree.
const ManifestPath = "site.json"

// PageArtifact describes one published page document.
type PageArtifact struct {
	PageID   string `json:"pageId"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Path     string `json:"path"`
	URL      string `json:"url,omitempty"`
	Checksum string `json:"checksum"`
	Size     int64  `json:"size"`
	Hidden   bool   `json:"hidden,omitempty"`
}

// Manifest is the build summary serialized to site.json alongside the pages.
type Manifest struct {
	SiteName    string         `json:"siteName"`
	Tagline     string         `json:"tagline,omitempty"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Pages       []PageArtifact `json:"pages"`
}

// BuildResult reports what a build produced.
type BuildResult struct {
	Manifest     Manifest
	ManifestPath string
	TotalBytes   int64
}

// Service runs publish builds against an artifact writer.
type Service struct {
	renderer *preview.Renderer
	writer   interfaces.ArtifactWriter
	routes   *Routes
	logger   interfaces.Logger
	now      func() time.Time
}

// Option configures a publish Service.
type Option func(*Service)

// WithLogger attaches a logger provider; entries land in the publisher
// namespace.
func WithLogger(provider interfaces.LoggerProvider) Option {
	return func(s *Service) {
		s.logger = logging.PublisherLogger(provider)
	}
}

// WithRoutes enables absolute page URLs in the manifest.
func WithRoutes(routes *Routes) Option {
	return func(s *Service) {
		s.routes = routes
	}
}

// WithClock pins the manifest timestamp, which also pins the footer year when
// the renderer shares the clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New builds a publish Service around a renderer and an artifact writer.
func New(renderer *preview.Renderer, writer interfaces.ArtifactWriter, opts ...Option) *Service {
	s := &Service{
		renderer: renderer,
		writer:   writer,
		logger:   logging.NoOp(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build renders every page of the configuration into the artifact writer and
// finishes with the manifest. The configuration is validated up front; a
// config that fails its invariants never produces partial output.
func (s *Service) Build(ctx context.Context, cfg siteconfig.SiteConfig) (BuildResult, error) {
	if err := siteconfig.Validate(cfg); err != nil {
		return BuildResult{}, fmt.Errorf("publisher: refusing to build invalid config: %w", err)
	}

	slugs := pageSlugs(cfg.Pages)
	manifest := Manifest{
		SiteName:    cfg.SiteName,
		Tagline:     cfg.Tagline,
		GeneratedAt: s.now().UTC(),
		Pages:       make([]PageArtifact, 0, len(cfg.Pages)),
	}

	var total int64
	for _, page := range cfg.Pages {
		if err := ctx.Err(); err != nil {
			return BuildResult{}, err
		}

		document := s.renderer.Render(cfg, page.ID)
		pageSlug := slugs[page.ID]
		artifact := PageArtifact{
			PageID:   page.ID,
			Name:     page.Name,
			Slug:     pageSlug,
			Path:     artifactPath(pageSlug),
			Checksum: checksum(document),
			Size:     int64(len(document)),
			Hidden:   page.IsHidden,
		}
		if s.routes != nil {
			url, err := s.routes.PageURL(pageSlug)
			if err != nil {
				return BuildResult{}, err
			}
			artifact.URL = url
		}

		if err := s.writer.WriteFile(ctx, interfaces.WriteFileRequest{
			Path:        artifact.Path,
			Content:     strings.NewReader(document),
			Size:        artifact.Size,
			ContentType: "text/html; charset=utf-8",
			Checksum:    artifact.Checksum,
			Metadata:    map[string]string{"pageId": page.ID},
		}); err != nil {
			return BuildResult{}, fmt.Errorf("publisher: write page %s: %w", page.ID, err)
		}

		s.logger.Debug("page published", "page_id", page.ID, "path", artifact.Path, "bytes", artifact.Size)
		manifest.Pages = append(manifest.Pages, artifact)
		total += artifact.Size
	}

	encoded, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return BuildResult{}, fmt.Errorf("publisher: encode manifest: %w", err)
	}
	if err := s.writer.WriteFile(ctx, interfaces.WriteFileRequest{
		Path:        ManifestPath,
		Content:     strings.NewReader(string(encoded)),
		Size:        int64(len(encoded)),
		ContentType: "application/json",
		Checksum:    checksum(string(encoded)),
	}); err != nil {
		return BuildResult{}, fmt.Errorf("publisher: write manifest: %w", err)
	}
	total += int64(len(encoded))

	s.logger.Info("site published", "site", cfg.SiteName, "pages", len(manifest.Pages), "bytes", total)
	return BuildResult{
		Manifest:     manifest,
		ManifestPath: ManifestPath,
		TotalBytes:   total,
	}, nil
}

func checksum(document string) string {
	sum := sha256.Sum256([]byte(document))
	return "sha256:" + hex.EncodeToString(sum[:])
}
