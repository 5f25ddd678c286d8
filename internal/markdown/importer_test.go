package markdown

import (
	"strings"
	"testing"

	"github.com/novaweb/go-sitebuilder/internal/identity"
	"github.com/novaweb/go-sitebuilder/siteconfig"
)

func newTestImporter() *Importer {
	return NewImporter(identity.Deterministic("markdown-test"))
}

func TestImportPageBuildsHeroFromLeadingHeading(t *testing.T) {
	source := []byte(`---
title: À Propos
type: about
---

# Notre Histoire

Une entreprise familiale depuis 1987.

Nous fabriquons tout à la main.
`)

	page, err := newTestImporter().ImportPage(source)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if page.Name != "À Propos" {
		t.Fatalf("expected frontmatter title, got %q", page.Name)
	}
	if page.Type != siteconfig.PageTypeAbout {
		t.Fatalf("expected about page, got %q", page.Type)
	}
	if len(page.Sections) != 2 {
		t.Fatalf("expected hero plus text, got %d sections", len(page.Sections))
	}

	hero, ok := page.Sections[0].Content.(siteconfig.HeroContent)
	if !ok {
		t.Fatalf("expected hero first, got %T", page.Sections[0].Content)
	}
	if hero.Title != "Notre Histoire" || hero.Subtitle != "Une entreprise familiale depuis 1987." {
		t.Fatalf("unexpected hero: %+v", hero)
	}

	text, ok := page.Sections[1].Content.(siteconfig.TextContent)
	if !ok {
		t.Fatalf("expected text second, got %T", page.Sections[1].Content)
	}
	if !strings.Contains(text.Text, "tout à la main") {
		t.Fatalf("unexpected text: %q", text.Text)
	}
}

func TestImportPageExtractsImages(t *testing.T) {
	source := []byte(`# Galerie

![Atelier](https://example.com/atelier.jpg)

Quelques mots sur l'atelier.
`)

	page, err := newTestImporter().ImportPage(source)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(page.Sections) != 3 {
		t.Fatalf("expected hero, image, text; got %d sections", len(page.Sections))
	}
	image, ok := page.Sections[1].Content.(siteconfig.ImageContent)
	if !ok {
		t.Fatalf("expected image section, got %T", page.Sections[1].Content)
	}
	if image.Src == nil || *image.Src != "https://example.com/atelier.jpg" {
		t.Fatalf("unexpected image source: %v", image.Src)
	}
}

func TestImportPageWithoutFrontmatterFallsBackToHeading(t *testing.T) {
	page, err := newTestImporter().ImportPage([]byte("# Contact\n\nÉcrivez-nous.\n"))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if page.Name != "Contact" {
		t.Fatalf("expected heading fallback, got %q", page.Name)
	}
	if page.Type != siteconfig.PageTypeCustom {
		t.Fatalf("expected custom page, got %q", page.Type)
	}
}

func TestImportPageEmptyDocumentGetsPlaceholderName(t *testing.T) {
	page, err := newTestImporter().ImportPage([]byte(""))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if page.Name != siteconfig.DefaultPageName {
		t.Fatalf("expected placeholder name, got %q", page.Name)
	}
	if len(page.Sections) != 0 {
		t.Fatalf("expected no sections, got %d", len(page.Sections))
	}
}

func TestImportPageHiddenFlag(t *testing.T) {
	source := []byte("---\ntitle: Interne\nhidden: true\n---\n\nNotes internes.\n")

	page, err := newTestImporter().ImportPage(source)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !page.IsHidden {
		t.Fatal("expected hidden page")
	}
}

func TestImportPageMidDocumentHeadingsStayText(t *testing.T) {
	source := []byte("# Accueil\n\nIntro.\n\n## Détails\n\nPlus de contenu.\n")

	page, err := newTestImporter().ImportPage(source)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(page.Sections) != 2 {
		t.Fatalf("expected hero plus one text section, got %d", len(page.Sections))
	}
	text := page.Sections[1].Content.(siteconfig.TextContent)
	if !strings.Contains(text.Text, "Détails") || !strings.Contains(text.Text, "Plus de contenu.") {
		t.Fatalf("expected heading folded into text, got %q", text.Text)
	}
}
