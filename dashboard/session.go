// Package dashboard hosts the editing session: the single stateful shell that
// owns the current configuration draft and coordinates the pure mutators,
// the preview renderer, persistence, and publishing. All other packages stay
// stateless; every edit funnels through here.
package dashboard

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/novaweb/go-sitebuilder/internal/identity"
	"github.com/novaweb/go-sitebuilder/internal/logging"
	"github.com/novaweb/go-sitebuilder/internal/markdown"
	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
	"github.com/novaweb/go-sitebuilder/preview"
	"github.com/novaweb/go-sitebuilder/publisher"
	"github.com/novaweb/go-sitebuilder/siteconfig"
	"github.com/novaweb/go-sitebuilder/store"
)

// Session owns one editing draft. Methods are safe for concurrent use; the
// draft itself is immutable data, every edit swaps in a fresh value produced
// by the pure mutators.
type Session struct {
	mu           sync.RWMutex
	cfg          siteconfig.SiteConfig
	activePageID string

	gen       identity.Generator
	store     store.Store
	siteKey   string
	renderer  *preview.Renderer
	publisher *publisher.Service
	uploader  interfaces.ImageUploader
	importer  *markdown.Importer
	logger    interfaces.Logger

	publishing atomic.Bool
}

// Option configures a Session.
type Option func(*Session)

// WithStore attaches snapshot persistence keyed by siteKey.
func WithStore(s store.Store, siteKey string) Option {
	return func(session *Session) {
		session.store = s
		if siteKey != "" {
			session.siteKey = siteKey
		}
	}
}

// WithPublisher enables Publish and Export.
func WithPublisher(p *publisher.Service) Option {
	return func(session *Session) {
		session.publisher = p
	}
}

// WithUploader enables image uploads.
func WithUploader(u interfaces.ImageUploader) Option {
	return func(session *Session) {
		session.uploader = u
	}
}

// WithLogger attaches a logger provider; entries land in the dashboard
// namespace.
func WithLogger(provider interfaces.LoggerProvider) Option {
	return func(session *Session) {
		session.logger = logging.DashboardLogger(provider)
	}
}

// WithGenerator overrides the id generator. Deterministic generators make
// session flows reproducible in tests.
func WithGenerator(gen identity.Generator) Option {
	return func(session *Session) {
		if gen != nil {
			session.gen = gen
		}
	}
}

// NewSession starts a session seeded with the starter configuration. Call
// Load to replace the seed with a persisted snapshot.
func NewSession(renderer *preview.Renderer, opts ...Option) *Session {
	session := &Session{
		renderer: renderer,
		gen:      identity.Random(),
		siteKey:  store.DefaultSiteKey,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(session)
	}
	session.importer = markdown.NewImporter(session.gen)
	session.cfg = siteconfig.Starter(session.gen)
	session.activePageID = session.cfg.Pages[0].ID
	return session
}

// Load replaces the draft with the persisted snapshot. A missing snapshot is
// not an error: the session keeps the starter configuration, matching the
// editor's behaviour of opening with defaults when nothing was saved yet.
func (s *Session) Load(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	cfg, err := s.store.Load(ctx, s.siteKey)
	if err != nil {
		var notFound *siteconfig.NotFoundError
		if errors.As(err, &notFound) {
			s.logger.Info("no saved snapshot, starting from defaults", "site_key", s.siteKey)
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.ensureActivePage()
	s.logger.Info("snapshot loaded", "site_key", s.siteKey, "pages", len(cfg.Pages))
	return nil
}

// Save persists the current draft.
func (s *Session) Save(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	s.mu.RLock()
	cfg := siteconfig.Clone(s.cfg)
	s.mu.RUnlock()
	return s.store.Save(ctx, s.siteKey, cfg)
}

// Config returns a deep copy of the current draft.
func (s *Session) Config() siteconfig.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return siteconfig.Clone(s.cfg)
}

// Replace swaps the whole draft, the way the editor's save endpoint accepts a
// full document. The incoming configuration must pass validation.
func (s *Session) Replace(_ context.Context, cfg siteconfig.SiteConfig) error {
	if err := siteconfig.Validate(cfg); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = siteconfig.Clone(cfg)
	s.ensureActivePage()
	return nil
}

// ActivePageID returns the page currently selected in the editor.
func (s *Session) ActivePageID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activePageID
}

// SelectPage changes the active page. Unknown ids are ignored.
func (s *Session) SelectPage(pageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, page := range s.cfg.Pages {
		if page.ID == pageID {
			s.activePageID = pageID
			return
		}
	}
}

// Preview renders the active page of the current draft.
func (s *Session) Preview() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.renderer.Render(s.cfg, s.activePageID)
}

// PreviewPage renders a specific page of the current draft.
func (s *Session) PreviewPage(pageID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.renderer.Render(s.cfg, pageID)
}

// Publish persists the draft and runs a build. Only one publish runs at a
// time; overlapping calls fail fast with ErrPublishInFlight.
func (s *Session) Publish(ctx context.Context) error {
	_, err := s.PublishResult(ctx)
	return err
}

// PublishResult is Publish with the build report.
func (s *Session) PublishResult(ctx context.Context) (publisher.BuildResult, error) {
	if s.publisher == nil {
		return publisher.BuildResult{}, ErrNoPublisher
	}
	if !s.publishing.CompareAndSwap(false, true) {
		return publisher.BuildResult{}, ErrPublishInFlight
	}
	defer s.publishing.Store(false)

	if err := s.Save(ctx); err != nil {
		return publisher.BuildResult{}, err
	}
	cfg := s.Config()
	result, err := s.publisher.Build(ctx, cfg)
	if err != nil {
		return publisher.BuildResult{}, err
	}
	s.logger.Info("site published", "pages", len(result.Manifest.Pages), "bytes", result.TotalBytes)
	return result, nil
}

// Export streams the current draft as a zip archive of the built site.
func (s *Session) Export(ctx context.Context, out io.Writer) (publisher.BuildResult, error) {
	if s.publisher == nil {
		return publisher.BuildResult{}, ErrNoPublisher
	}
	return s.publisher.Export(ctx, s.Config(), out)
}

// UploadImage pushes an image through the configured uploader and returns the
// URL to store in section content.
func (s *Session) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	if s.uploader == nil {
		return "", ErrNoUploader
	}
	return s.uploader.Upload(ctx, filename, content)
}

// ImportPage converts a Markdown document into a page, appends it to the
// draft, and selects it.
func (s *Session) ImportPage(_ context.Context, source []byte) (siteconfig.PageConfig, error) {
	page, err := s.importer.ImportPage(source)
	if err != nil {
		return siteconfig.PageConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := siteconfig.Clone(s.cfg)
	out.Pages = append(out.Pages, page)
	s.cfg = out
	s.activePageID = page.ID
	s.logger.Info("page imported", "page_id", page.ID, "sections", len(page.Sections))
	return page, nil
}

// ensureActivePage reselects the first page when the active id no longer
// resolves. Callers hold the write lock.
func (s *Session) ensureActivePage() {
	for _, page := range s.cfg.Pages {
		if page.ID == s.activePageID {
			return
		}
	}
	if len(s.cfg.Pages) > 0 {
		s.activePageID = s.cfg.Pages[0].ID
	} else {
		s.activePageID = ""
	}
}
