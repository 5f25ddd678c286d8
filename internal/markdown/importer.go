// Package markdown converts Markdown documents into builder pages. A document
// becomes one page: a leading level-one heading seeds a hero section, images
// become image sections, and the remaining prose collapses into text sections.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/novaweb/go-sitebuilder/internal/identity"
	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// PageMeta is the YAML frontmatter accepted on imported documents.
type PageMeta struct {
	Title  string `yaml:"title"`
	Type   string `yaml:"type"`
	Hidden bool   `yaml:"hidden"`
}

// Importer parses Markdown into page configurations.
type Importer struct {
	gen    identity.Generator
	engine goldmark.Markdown
}

// NewImporter builds an importer; ids for the page and its sections come from
// the supplied generator.
func NewImporter(gen identity.Generator) *Importer {
	return &Importer{
		gen:    gen,
		engine: goldmark.New(),
	}
}

// ImportPage converts one Markdown document into a page. Frontmatter is
// optional; a missing title falls back to the first heading, then to the
// localized placeholder name.
func (i *Importer) ImportPage(source []byte) (siteconfig.PageConfig, error) {
	var meta PageMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return siteconfig.PageConfig{}, fmt.Errorf("markdown: parse frontmatter: %w", err)
	}

	page := siteconfig.PageConfig{
		ID:       i.gen.NewID("page"),
		Type:     pageType(meta.Type),
		IsHidden: meta.Hidden,
		Sections: []siteconfig.SectionConfig{},
	}

	doc := i.engine.Parser().Parse(gmtext.NewReader(body))
	var (
		text      strings.Builder
		heroTitle string
	)
	flushText := func() {
		content := strings.TrimSpace(text.String())
		text.Reset()
		if content == "" {
			return
		}
		page.Sections = append(page.Sections, siteconfig.SectionConfig{
			ID:      i.gen.NewID("sec"),
			Type:    siteconfig.SectionTypeText,
			Content: siteconfig.TextContent{Text: content},
		})
	}

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch typed := node.(type) {
		case *ast.Heading:
			if typed.Level == 1 && heroTitle == "" && len(page.Sections) == 0 && text.Len() == 0 {
				heroTitle = nodeText(typed, body)
				subtitle := ""
				if paragraph, ok := node.NextSibling().(*ast.Paragraph); ok && imageSource(paragraph, body) == "" {
					subtitle = nodeText(paragraph, body)
					node = paragraph
				}
				page.Sections = append(page.Sections, siteconfig.SectionConfig{
					ID:      i.gen.NewID("sec"),
					Type:    siteconfig.SectionTypeHero,
					Content: siteconfig.HeroContent{Title: heroTitle, Subtitle: subtitle},
				})
				continue
			}
			flushText()
			text.WriteString(nodeText(typed, body))
			text.WriteString("\n\n")
		case *ast.Paragraph:
			if src := imageSource(typed, body); src != "" {
				flushText()
				page.Sections = append(page.Sections, siteconfig.SectionConfig{
					ID:      i.gen.NewID("sec"),
					Type:    siteconfig.SectionTypeImage,
					Content: siteconfig.ImageContent{Src: &src},
				})
				continue
			}
			text.WriteString(nodeText(typed, body))
			text.WriteString("\n\n")
		default:
			if content := nodeText(node, body); content != "" {
				text.WriteString(content)
				text.WriteString("\n\n")
			}
		}
	}
	flushText()

	page.Name = strings.TrimSpace(meta.Title)
	if page.Name == "" {
		page.Name = heroTitle
	}
	if page.Name == "" {
		page.Name = siteconfig.DefaultPageName
	}
	return page, nil
}

func pageType(value string) siteconfig.PageType {
	switch siteconfig.PageType(strings.ToLower(strings.TrimSpace(value))) {
	case siteconfig.PageTypeHome:
		return siteconfig.PageTypeHome
	case siteconfig.PageTypeAbout:
		return siteconfig.PageTypeAbout
	case siteconfig.PageTypeContact:
		return siteconfig.PageTypeContact
	case siteconfig.PageTypeCrisis:
		return siteconfig.PageTypeCrisis
	default:
		return siteconfig.PageTypeCustom
	}
}

// imageSource returns the destination of the paragraph's image when the
// paragraph is image-only, otherwise "".
func imageSource(paragraph *ast.Paragraph, source []byte) string {
	var image *ast.Image
	for child := paragraph.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *ast.Image:
			if image != nil {
				return ""
			}
			image = typed
		case *ast.Text:
			if strings.TrimSpace(string(typed.Segment.Value(source))) != "" {
				return ""
			}
		default:
			return ""
		}
	}
	if image == nil {
		return ""
	}
	return string(image.Destination)
}

func nodeText(node ast.Node, source []byte) string {
	var out strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if textNode, ok := n.(*ast.Text); ok {
			out.Write(textNode.Segment.Value(source))
			if textNode.SoftLineBreak() || textNode.HardLineBreak() {
				out.WriteString("\n")
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(out.String())
}
