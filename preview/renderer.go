// Package preview renders a site configuration into a complete standalone
// HTML document. Rendering is pure: the same configuration and page always
// produce byte-identical output, with the footer year as the only
// environmental input, supplied by an injectable clock.
package preview

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// Renderer turns configurations into HTML documents.
type Renderer struct {
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the clock used for the footer year. Tests and
// deterministic publish pipelines pin this to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// New builds a Renderer. Without options the footer year tracks wall time.
func New(opts ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the document for one page of the site. When crisis mode is
// enabled the page id is ignored entirely and the crisis takeover replaces the
// whole body; navigation and footer are suppressed with it. Otherwise a page
// id that does not resolve yields an empty placeholder document.
func (r *Renderer) Render(cfg siteconfig.SiteConfig, activePageID string) string {
	var body strings.Builder
	if cfg.CrisisMode.Enabled {
		writeCrisisPage(&body, cfg.CrisisMode)
	} else {
		page, ok := findPage(cfg.Pages, activePageID)
		if !ok {
			return "<div></div>"
		}
		writeNav(&body, cfg, page.ID)
		for _, section := range page.Sections {
			writeSection(&body, section)
		}
		writeFooter(&body, cfg.SiteName, r.now().Year())
	}

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n")
	doc.WriteString("<html lang=\"fr\">\n<head>\n")
	doc.WriteString("  <meta charset=\"UTF-8\">\n")
	doc.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&doc, "  <title>%s</title>\n", html.EscapeString(cfg.SiteName))
	fmt.Fprintf(&doc, "  <style>%s</style>\n", stylesheet)
	doc.WriteString("</head>\n<body>\n")
	doc.WriteString(body.String())
	doc.WriteString("</body>\n</html>\n")
	return doc.String()
}

func findPage(pages []siteconfig.PageConfig, pageID string) (siteconfig.PageConfig, bool) {
	for _, page := range pages {
		if page.ID == pageID {
			return page, true
		}
	}
	return siteconfig.PageConfig{}, false
}

func writeNav(w *strings.Builder, cfg siteconfig.SiteConfig, activePageID string) {
	w.WriteString("<nav>\n  <div class=\"logo\">")
	if cfg.Logo != "" {
		fmt.Fprintf(w, "<img src=\"%s\" alt=\"Logo\">", html.EscapeString(cfg.Logo))
	}
	fmt.Fprintf(w, "<span>%s</span></div>\n", html.EscapeString(cfg.SiteName))
	w.WriteString("  <div class=\"nav-links\">")
	for _, page := range cfg.Pages {
		if page.IsHidden {
			continue
		}
		class := ""
		if page.ID == activePageID {
			class = "active"
		}
		fmt.Fprintf(w, "<a href=\"#\" class=\"%s\">%s</a>", class, html.EscapeString(page.Name))
	}
	w.WriteString("</div>\n</nav>\n")
}

func writeFooter(w *strings.Builder, siteName string, year int) {
	fmt.Fprintf(w, "<footer>\n  <p>&copy; %d %s. Propulsé par NovaWeb.</p>\n</footer>\n", year, html.EscapeString(siteName))
}

func writeCrisisPage(w *strings.Builder, crisis siteconfig.CrisisMode) {
	w.WriteString("<div class=\"crisis-page\">\n")
	w.WriteString("  <svg class=\"crisis-icon\" fill=\"currentColor\" viewBox=\"0 0 20 20\">\n")
	w.WriteString("    <path fill-rule=\"evenodd\" d=\"M8.257 3.099c.765-1.36 2.722-1.36 3.486 0l5.58 9.92c.75 1.334-.213 2.98-1.742 2.98H4.42c-1.53 0-2.493-1.646-1.743-2.98l5.58-9.92zM11 13a1 1 0 11-2 0 1 1 0 012 0zm-1-8a1 1 0 00-1 1v3a1 1 0 002 0V6a1 1 0 00-1-1z\" clip-rule=\"evenodd\"/>\n")
	w.WriteString("  </svg>\n")
	fmt.Fprintf(w, "  <h1 class=\"crisis-title\">%s</h1>\n", html.EscapeString(crisis.Title))
	fmt.Fprintf(w, "  <p class=\"crisis-message\">%s</p>\n", html.EscapeString(crisis.Message))
	w.WriteString("</div>\n")
}
