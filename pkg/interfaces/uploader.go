package interfaces

import (
	"context"
	"io"
)

// ImageUploader turns a local file into an opaque URL (remote upload) or a
// data URI (local encode). The site builder only ever stores and echoes the
// returned string; it never decodes or validates it.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}
