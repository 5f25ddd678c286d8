package publisher

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// Export runs a full build into memory and streams the output tree as a zip
// archive. File entries carry the build timestamp so identical configurations
// exported with a pinned clock produce identical archives.
func (s *Service) Export(ctx context.Context, cfg siteconfig.SiteConfig, out io.Writer) (BuildResult, error) {
	staging := NewMemoryWriter()
	build := New(s.renderer, staging, WithClock(s.now), WithRoutes(s.routes))
	build.logger = s.logger

	result, err := build.Build(ctx, cfg)
	if err != nil {
		return BuildResult{}, err
	}

	archive := zip.NewWriter(out)
	stamp := result.Manifest.GeneratedAt
	for _, path := range staging.Paths() {
		body, _ := staging.File(path)
		if err := writeArchiveEntry(archive, path, body, stamp); err != nil {
			return BuildResult{}, err
		}
	}
	if err := archive.Close(); err != nil {
		return BuildResult{}, fmt.Errorf("publisher: finalize archive: %w", err)
	}

	s.logger.Info("site exported", "site", cfg.SiteName, "entries", len(staging.Paths()))
	return result, nil
}

func writeArchiveEntry(archive *zip.Writer, path string, body []byte, stamp time.Time) error {
	header := &zip.FileHeader{
		Name:     path,
		Method:   zip.Deflate,
		Modified: stamp,
	}
	entry, err := archive.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("publisher: archive entry %s: %w", path, err)
	}
	if _, err := io.Copy(entry, bytes.NewReader(body)); err != nil {
		return fmt.Errorf("publisher: archive entry %s: %w", path, err)
	}
	return nil
}
