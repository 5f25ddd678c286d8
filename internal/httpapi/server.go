// Package httpapi exposes the editing session over HTTP. The surface mirrors
// the dashboard client contract: configuration snapshots in and out, publish,
// export, and image upload, all under /api/cms.
package httpapi

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"

	"github.com/novaweb/go-sitebuilder/dashboard"
	"github.com/novaweb/go-sitebuilder/internal/logging"
	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// Server wires the session into a fiber application.
type Server struct {
	session *dashboard.Session
	logger  interfaces.Logger
	app     *fiber.App
}

// Option configures a Server.
type Option func(*Server)

// WithLogger attaches a logger provider; entries land in the http namespace.
func WithLogger(provider interfaces.LoggerProvider) Option {
	return func(s *Server) {
		s.logger = logging.HTTPLogger(provider)
	}
}

// New builds the HTTP surface around an editing session.
func New(session *dashboard.Session, opts ...Option) *Server {
	s := &Server{
		session: session,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "sitebuilder",
		ErrorHandler: s.errorHandler,
	})
	s.registerRoutes()
	return s
}

// App exposes the underlying fiber application for embedding and tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves the API on the given address until shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api/cms")

	api.Get("/site-config/", s.handleGetConfig)
	api.Post("/site-config/", s.handleUpdateConfig)
	api.Post("/publish/", s.handlePublish)
	api.Get("/export/", s.handleExport)
	api.Post("/upload-image/", s.handleUploadImage)

	api.Get("/preview/", s.handlePreview)
	api.Get("/preview/:pageId", s.handlePreview)
	api.Post("/pages/import/", s.handleImportPage)
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	var minPages *siteconfig.MinimumPagesError
	var notFound *siteconfig.NotFoundError
	var invalid validation.Errors
	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	case errors.As(err, &minPages):
		status = fiber.StatusConflict
	case errors.As(err, &notFound):
		status = fiber.StatusNotFound
	case errors.Is(err, dashboard.ErrPublishInFlight):
		status = fiber.StatusConflict
	case errors.Is(err, siteconfig.ErrConfigInvalid), errors.As(err, &invalid):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, dashboard.ErrNoPublisher), errors.Is(err, dashboard.ErrNoUploader):
		status = fiber.StatusNotImplemented
	}

	if status >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.Path(), "error", err)
	} else {
		s.logger.Debug("request rejected", "path", c.Path(), "status", status, "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
