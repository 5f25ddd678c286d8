package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
)

// DefaultMaxInlineSize caps inline images at 5 MiB. Data URIs are embedded
// verbatim into configuration snapshots, so oversized images would bloat
// every save and render.
const DefaultMaxInlineSize = 5 << 20

// DataURIUploader encodes images as data URIs instead of uploading them
// anywhere. This keeps the builder fully self-contained: the resulting URL
// works in previews, exports, and published pages without external storage.
type DataURIUploader struct {
	maxSize int64
}

var _ interfaces.ImageUploader = (*DataURIUploader)(nil)

// NewDataURIUploader builds an inline uploader. maxSize <= 0 falls back to
// DefaultMaxInlineSize.
func NewDataURIUploader(maxSize int64) *DataURIUploader {
	if maxSize <= 0 {
		maxSize = DefaultMaxInlineSize
	}
	return &DataURIUploader{maxSize: maxSize}
}

// Upload reads the image and returns it as a base64 data URI. The media type
// derives from the filename extension, defaulting to application/octet-stream.
func (u *DataURIUploader) Upload(_ context.Context, filename string, content io.Reader) (string, error) {
	body, err := io.ReadAll(io.LimitReader(content, u.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("media: read %s: %w", filename, err)
	}
	if int64(len(body)) > u.maxSize {
		return "", fmt.Errorf("media: image %s exceeds inline limit of %d bytes", filename, u.maxSize)
	}

	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	// Strip charset parameters; data URIs carry the bare media type.
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}

	encoded := base64.StdEncoding.EncodeToString(body)
	return fmt.Sprintf("data:%s;base64,%s", mediaType, encoded), nil
}
