package httpapi

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// configEnvelope matches the dashboard client wire shape: the configuration
// nested under a "config" key in both directions.
type configEnvelope struct {
	Config siteconfig.SiteConfig `json:"config"`
}

func (s *Server) handleGetConfig(c *fiber.Ctx) error {
	return c.JSON(configEnvelope{Config: s.session.Config()})
}

func (s *Server) handleUpdateConfig(c *fiber.Ctx) error {
	var envelope configEnvelope
	if err := c.BodyParser(&envelope); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid configuration payload: %v", err))
	}
	if err := s.session.Replace(c.Context(), envelope.Config); err != nil {
		return err
	}
	if err := s.session.Save(c.Context()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handlePublish(c *fiber.Ctx) error {
	result, err := s.session.PublishResult(c.Context())
	if err != nil {
		return err
	}

	files := make(map[string]string, len(result.Manifest.Pages))
	for _, page := range result.Manifest.Pages {
		files[page.Path] = page.Checksum
	}
	url := ""
	if len(result.Manifest.Pages) > 0 {
		url = result.Manifest.Pages[0].URL
	}
	return c.JSON(fiber.Map{
		"url":          url,
		"files":        files,
		"published_at": result.Manifest.GeneratedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleExport(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if _, err := s.session.Export(c.Context(), &buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="site.zip"`)
	return c.Send(buf.Bytes())
}

func (s *Server) handleUploadImage(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "multipart field \"file\" is required")
	}
	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	url, err := s.session.UploadImage(c.Context(), header.Filename, file)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"url": url})
}

func (s *Server) handlePreview(c *fiber.Ctx) error {
	pageID := c.Params("pageId")
	var document string
	if pageID == "" {
		document = s.session.Preview()
	} else {
		document = s.session.PreviewPage(pageID)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(document)
}

func (s *Server) handleImportPage(c *fiber.Ctx) error {
	source := c.Body()
	if len(source) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "markdown document body is required")
	}
	page, err := s.session.ImportPage(c.Context(), source)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"page": page})
}
