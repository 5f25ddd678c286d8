// Package sitebuilder assembles the site building runtime: the configuration
// model, the editing session, the preview renderer, publishing, and the HTTP
// surface, wired from one Config value.
package sitebuilder

import (
	"context"
	"fmt"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/novaweb/go-sitebuilder/dashboard"
	"github.com/novaweb/go-sitebuilder/internal/httpapi"
	"github.com/novaweb/go-sitebuilder/internal/logging/gologger"
	"github.com/novaweb/go-sitebuilder/media"
	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
	"github.com/novaweb/go-sitebuilder/preview"
	"github.com/novaweb/go-sitebuilder/publisher"
	"github.com/novaweb/go-sitebuilder/siteconfig"
	"github.com/novaweb/go-sitebuilder/store"
)

// SiteConfig exports the configuration document type.
type SiteConfig = siteconfig.SiteConfig

// PageConfig exports the page type.
type PageConfig = siteconfig.PageConfig

// SectionConfig exports the section type.
type SectionConfig = siteconfig.SectionConfig

// Session exports the editing session type.
type Session = dashboard.Session

// BuildResult exports the publish report type.
type BuildResult = publisher.BuildResult

// Module is the top level site builder runtime façade.
type Module struct {
	config    Config
	provider  interfaces.LoggerProvider
	db        *bun.DB
	store     store.Store
	renderer  *preview.Renderer
	publisher *publisher.Service
	session   *dashboard.Session
	server    *httpapi.Server
}

// New constructs a site builder module from the provided configuration.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{config: cfg}

	if cfg.Logging.Enabled {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if err := m.buildStore(); err != nil {
		return nil, err
	}

	m.renderer = preview.New()
	m.publisher = m.buildPublisher()

	uploader, err := m.buildUploader()
	if err != nil {
		m.Close()
		return nil, err
	}

	sessionOpts := []dashboard.Option{
		dashboard.WithStore(m.store, cfg.SiteKey),
		dashboard.WithPublisher(m.publisher),
		dashboard.WithUploader(uploader),
	}
	if m.provider != nil {
		sessionOpts = append(sessionOpts, dashboard.WithLogger(m.provider))
	}
	m.session = dashboard.NewSession(m.renderer, sessionOpts...)

	serverOpts := []httpapi.Option{}
	if m.provider != nil {
		serverOpts = append(serverOpts, httpapi.WithLogger(m.provider))
	}
	m.server = httpapi.New(m.session, serverOpts...)

	return m, nil
}

func (m *Module) buildStore() error {
	cfg := m.config.Storage
	if cfg.Provider == StorageMemory {
		m.store = store.NewMemoryStore()
		return nil
	}

	db, err := store.OpenDB(cfg.Provider, cfg.DSN)
	if err != nil {
		return err
	}
	m.db = db

	opts := []store.BunStoreOption{}
	if m.provider != nil {
		opts = append(opts, store.WithStoreLogger(m.provider))
	}
	if cfg.CacheEnabled {
		cacheCfg := repocache.DefaultConfig()
		if cfg.CacheTTL > 0 {
			cacheCfg.TTL = cfg.CacheTTL
		}
		service, err := repocache.NewCacheService(cacheCfg)
		if err != nil {
			db.Close()
			return fmt.Errorf("sitebuilder: cache service: %w", err)
		}
		opts = append(opts, store.WithCache(service, repocache.NewDefaultKeySerializer()))
	}
	m.store = store.NewBunStore(db, opts...)
	return nil
}

func (m *Module) buildPublisher() *publisher.Service {
	opts := []publisher.Option{}
	if m.provider != nil {
		opts = append(opts, publisher.WithLogger(m.provider))
	}
	if m.config.Publish.BaseURL != "" {
		opts = append(opts, publisher.WithRoutes(publisher.NewRoutes(m.config.Publish.BaseURL)))
	}
	writer := publisher.NewFSWriter(m.config.Publish.OutputDir)
	return publisher.New(m.renderer, writer, opts...)
}

func (m *Module) buildUploader() (interfaces.ImageUploader, error) {
	cfg := m.config.Upload
	if cfg.Provider == UploadCloudinary {
		return media.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.Folder)
	}
	return media.NewDataURIUploader(cfg.MaxInlineSize), nil
}

// Init prepares backing storage and loads the persisted snapshot into the
// session.
func (m *Module) Init(ctx context.Context) error {
	if bunStore, ok := m.store.(*store.BunStore); ok {
		if err := bunStore.EnsureSchema(ctx); err != nil {
			return err
		}
	}
	return m.session.Load(ctx)
}

// Session returns the editing session.
func (m *Module) Session() *dashboard.Session {
	return m.session
}

// Store returns the snapshot store.
func (m *Module) Store() store.Store {
	return m.store
}

// Renderer returns the preview renderer.
func (m *Module) Renderer() *preview.Renderer {
	return m.renderer
}

// Publisher returns the build service.
func (m *Module) Publisher() *publisher.Service {
	return m.publisher
}

// HTTP returns the HTTP surface wrapping the session.
func (m *Module) HTTP() *httpapi.Server {
	return m.server
}

// Listen serves the HTTP surface on addr until shutdown.
func (m *Module) Listen(addr string) error {
	return m.server.Listen(addr)
}

// Close releases backing resources. Safe to call on a partially built module.
func (m *Module) Close() error {
	if m.server != nil {
		_ = m.server.Shutdown()
	}
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
