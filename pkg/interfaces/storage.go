package interfaces

import (
	"context"
	"io"
)

// WriteFileRequest describes a single artifact write routed through an
// ArtifactWriter implementation.
type WriteFileRequest struct {
	Path        string
	Content     io.Reader
	Size        int64
	ContentType string
	Checksum    string
	Metadata    map[string]string
}

// ArtifactWriter abstracts storage provider specifics for build outputs.
// Implementations may target the local filesystem, an in-memory map, or an
// object store; the publisher only ever talks to this contract.
type ArtifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req WriteFileRequest) error
}
