package publisher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
)

// FSWriter writes build artifacts beneath a root directory on the local
// filesystem.
type FSWriter struct {
	root string
}

var _ interfaces.ArtifactWriter = (*FSWriter)(nil)

// NewFSWriter roots an artifact writer at dir.
func NewFSWriter(dir string) *FSWriter {
	return &FSWriter{root: dir}
}

// EnsureDir creates the directory (and parents) below the root.
func (w *FSWriter) EnsureDir(_ context.Context, path string) error {
	target, err := w.resolve(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(target, 0o755)
}

// WriteFile streams one artifact to disk, creating parent directories as
// needed.
func (w *FSWriter) WriteFile(_ context.Context, req interfaces.WriteFileRequest) error {
	target, err := w.resolve(req.Path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	file, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, req.Content); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (w *FSWriter) resolve(path string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(path))
	if cleaned == "." {
		return w.root, nil
	}
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("publisher: artifact path %q escapes output root", path)
	}
	return filepath.Join(w.root, cleaned), nil
}

// MemoryWriter captures build artifacts in memory. Used by tests and by the
// archive exporter, which needs the rendered tree without touching disk.
type MemoryWriter struct {
	mu    sync.RWMutex
	files map[string][]byte
}

var _ interfaces.ArtifactWriter = (*MemoryWriter)(nil)

// NewMemoryWriter returns an empty in-memory artifact store.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{files: map[string][]byte{}}
}

// EnsureDir is a no-op; the in-memory store has no directories.
func (w *MemoryWriter) EnsureDir(context.Context, string) error { return nil }

// WriteFile stores the artifact body under its path.
func (w *MemoryWriter) WriteFile(_ context.Context, req interfaces.WriteFileRequest) error {
	body, err := io.ReadAll(req.Content)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[normalizeKey(req.Path)] = body
	return nil
}

// File returns one stored artifact by path.
func (w *MemoryWriter) File(path string) ([]byte, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	body, ok := w.files[normalizeKey(path)]
	return body, ok
}

// Paths lists stored artifact paths in sorted order.
func (w *MemoryWriter) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func normalizeKey(path string) string {
	return strings.TrimPrefix(strings.TrimSpace(path), "/")
}
