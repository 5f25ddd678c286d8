package siteconfig

import (
	"strings"

	"github.com/novaweb/go-sitebuilder/internal/identity"
)

// Mutators are deterministic, side-effect-free transitions from one
// configuration to the next. None of them touches its input: every applied
// mutation clones first, so the returned root (and all modified ancestors) is
// a new value. Operations referencing a missing page, section, or product are
// silent no-ops and hand the input back untouched; the only typed rejection is
// the minimum-one-page invariant on RemovePage.

// NullString distinguishes "set to this value" from "clear the field" when
// patching nullable content fields. A nil *NullString leaves the field alone.
type NullString struct {
	Valid bool
	Value string
}

// Pointer converts the patch value to the model's nullable representation.
func (n NullString) Pointer() *string {
	if !n.Valid {
		return nil
	}
	value := n.Value
	return &value
}

// ContentPatch is a partial content update for exactly one section type.
// Fields left nil are preserved; a patch applied to a section of a different
// type is a no-op.
type ContentPatch interface {
	patchType() SectionType
}

// HeroPatch updates a hero section.
type HeroPatch struct {
	Title    *string
	Subtitle *string
	BgImage  *NullString
}

func (HeroPatch) patchType() SectionType { return SectionTypeHero }

// TextPatch updates a text section.
type TextPatch struct {
	Text *string
}

func (TextPatch) patchType() SectionType { return SectionTypeText }

// ImagePatch updates an image section.
type ImagePatch struct {
	Src *NullString
}

func (ImagePatch) patchType() SectionType { return SectionTypeImage }

// ProductsPatch replaces the product list of a products section wholesale.
// The product-level mutators below are the usual entry points; this exists
// for bulk edits such as reordering.
type ProductsPatch struct {
	Products []ProductItem
}

func (ProductsPatch) patchType() SectionType { return SectionTypeProducts }

// FormPatch updates a contact form section.
type FormPatch struct {
	EmailLabel   *string
	MessageLabel *string
	ButtonText   *string
}

func (FormPatch) patchType() SectionType { return SectionTypeForm }

// ProductField names the single product attribute UpdateProduct sets.
type ProductField string

const (
	ProductFieldTitle       ProductField = "title"
	ProductFieldPrice       ProductField = "price"
	ProductFieldDescription ProductField = "description"
	ProductFieldImage       ProductField = "image"
)

// AddPage appends a custom page with a fresh id and an empty section list.
// An empty name falls back to the localized placeholder. The created page is
// returned so callers can select it.
func AddPage(cfg SiteConfig, gen identity.Generator, name string) (SiteConfig, PageConfig) {
	if strings.TrimSpace(name) == "" {
		name = DefaultPageName
	}
	page := PageConfig{
		ID:       gen.NewID("page"),
		Name:     name,
		Type:     PageTypeCustom,
		Sections: []SectionConfig{},
	}
	out := Clone(cfg)
	out.Pages = append(out.Pages, page)
	return out, page
}

// RemovePage filters the page out. Removing the last remaining page is
// rejected with a MinimumPagesError and the input is returned unchanged; a
// missing id is a silent no-op. Reselecting the active page after a removal is
// the caller's responsibility.
func RemovePage(cfg SiteConfig, pageID string) (SiteConfig, error) {
	if len(cfg.Pages) <= 1 {
		return cfg, &MinimumPagesError{PageID: pageID}
	}
	if pageIndex(cfg.Pages, pageID) < 0 {
		return cfg, nil
	}
	out := Clone(cfg)
	pages := out.Pages[:0]
	for _, page := range out.Pages {
		if page.ID != pageID {
			pages = append(pages, page)
		}
	}
	out.Pages = pages
	return out, nil
}

// RenamePage updates the display label of a page.
func RenamePage(cfg SiteConfig, pageID, newName string) SiteConfig {
	idx := pageIndex(cfg.Pages, pageID)
	if idx < 0 {
		return cfg
	}
	out := Clone(cfg)
	out.Pages[idx].Name = newName
	return out
}

// SetPageHidden toggles whether a page appears in generated navigation.
func SetPageHidden(cfg SiteConfig, pageID string, hidden bool) SiteConfig {
	idx := pageIndex(cfg.Pages, pageID)
	if idx < 0 {
		return cfg
	}
	out := Clone(cfg)
	out.Pages[idx].IsHidden = hidden
	return out
}

// AddSection appends a section with the default payload for its type to the
// target page.
func AddSection(cfg SiteConfig, gen identity.Generator, pageID string, sectionType SectionType) SiteConfig {
	content := DefaultContent(sectionType)
	if content == nil {
		return cfg
	}
	idx := pageIndex(cfg.Pages, pageID)
	if idx < 0 {
		return cfg
	}
	out := Clone(cfg)
	out.Pages[idx].Sections = append(out.Pages[idx].Sections, SectionConfig{
		ID:      gen.NewID("sec"),
		Type:    sectionType,
		Content: content,
	})
	return out
}

// RemoveSection filters a section out of its page.
func RemoveSection(cfg SiteConfig, pageID, sectionID string) SiteConfig {
	pageIdx, sectionIdx := sectionIndex(cfg.Pages, pageID, sectionID)
	if sectionIdx < 0 {
		return cfg
	}
	out := Clone(cfg)
	sections := out.Pages[pageIdx].Sections
	out.Pages[pageIdx].Sections = append(sections[:sectionIdx], sections[sectionIdx+1:]...)
	return out
}

// PatchSectionContent shallow-merges a partial payload into the section's
// content. Fields absent from the patch are preserved; the section type never
// changes. A patch built for a different section type is a no-op.
func PatchSectionContent(cfg SiteConfig, pageID, sectionID string, patch ContentPatch) SiteConfig {
	if patch == nil {
		return cfg
	}
	pageIdx, sectionIdx := sectionIndex(cfg.Pages, pageID, sectionID)
	if sectionIdx < 0 {
		return cfg
	}
	if cfg.Pages[pageIdx].Sections[sectionIdx].Type != patch.patchType() {
		return cfg
	}
	out := Clone(cfg)
	section := &out.Pages[pageIdx].Sections[sectionIdx]
	section.Content = mergeContent(section.Content, patch)
	return out
}

// AddProduct appends a default product card to a products section. Sections
// of any other type are left alone.
func AddProduct(cfg SiteConfig, gen identity.Generator, pageID, sectionID string) SiteConfig {
	pageIdx, sectionIdx := sectionIndex(cfg.Pages, pageID, sectionID)
	if sectionIdx < 0 {
		return cfg
	}
	content, ok := cfg.Pages[pageIdx].Sections[sectionIdx].Content.(ProductsContent)
	if !ok {
		return cfg
	}
	products := cloneProducts(content.Products)
	products = append(products, DefaultProduct(gen))
	out := Clone(cfg)
	out.Pages[pageIdx].Sections[sectionIdx].Content = ProductsContent{Products: products}
	return out
}

// UpdateProduct sets one field of one product by id. For the image field an
// empty value clears the image back to null.
func UpdateProduct(cfg SiteConfig, pageID, sectionID, productID string, field ProductField, value string) SiteConfig {
	pageIdx, sectionIdx := sectionIndex(cfg.Pages, pageID, sectionID)
	if sectionIdx < 0 {
		return cfg
	}
	content, ok := cfg.Pages[pageIdx].Sections[sectionIdx].Content.(ProductsContent)
	if !ok {
		return cfg
	}
	prodIdx := productIndex(content.Products, productID)
	if prodIdx < 0 {
		return cfg
	}

	products := cloneProducts(content.Products)
	product := &products[prodIdx]
	switch field {
	case ProductFieldTitle:
		product.Title = value
	case ProductFieldPrice:
		product.Price = value
	case ProductFieldDescription:
		product.Description = value
	case ProductFieldImage:
		if value == "" {
			product.Image = nil
		} else {
			product.Image = &value
		}
	default:
		return cfg
	}

	out := Clone(cfg)
	out.Pages[pageIdx].Sections[sectionIdx].Content = ProductsContent{Products: products}
	return out
}

// RemoveProduct filters a product out of its section.
func RemoveProduct(cfg SiteConfig, pageID, sectionID, productID string) SiteConfig {
	pageIdx, sectionIdx := sectionIndex(cfg.Pages, pageID, sectionID)
	if sectionIdx < 0 {
		return cfg
	}
	content, ok := cfg.Pages[pageIdx].Sections[sectionIdx].Content.(ProductsContent)
	if !ok {
		return cfg
	}
	if productIndex(content.Products, productID) < 0 {
		return cfg
	}

	products := make([]ProductItem, 0, len(content.Products)-1)
	for _, product := range cloneProducts(content.Products) {
		if product.ID != productID {
			products = append(products, product)
		}
	}
	out := Clone(cfg)
	out.Pages[pageIdx].Sections[sectionIdx].Content = ProductsContent{Products: products}
	return out
}

// CrisisPatch is a partial crisis-mode update; nil fields are preserved.
type CrisisPatch struct {
	Enabled *bool
	Title   *string
	Message *string
}

// SetCrisisMode merges partial crisis-mode fields into the site override.
func SetCrisisMode(cfg SiteConfig, patch CrisisPatch) SiteConfig {
	out := Clone(cfg)
	if patch.Enabled != nil {
		out.CrisisMode.Enabled = *patch.Enabled
	}
	if patch.Title != nil {
		out.CrisisMode.Title = *patch.Title
	}
	if patch.Message != nil {
		out.CrisisMode.Message = *patch.Message
	}
	return out
}

func mergeContent(content Content, patch ContentPatch) Content {
	switch p := patch.(type) {
	case HeroPatch:
		current, ok := content.(HeroContent)
		if !ok {
			return content
		}
		if p.Title != nil {
			current.Title = *p.Title
		}
		if p.Subtitle != nil {
			current.Subtitle = *p.Subtitle
		}
		if p.BgImage != nil {
			current.BgImage = p.BgImage.Pointer()
		}
		return current
	case TextPatch:
		current, ok := content.(TextContent)
		if !ok {
			return content
		}
		if p.Text != nil {
			current.Text = *p.Text
		}
		return current
	case ImagePatch:
		current, ok := content.(ImageContent)
		if !ok {
			return content
		}
		if p.Src != nil {
			current.Src = p.Src.Pointer()
		}
		return current
	case ProductsPatch:
		current, ok := content.(ProductsContent)
		if !ok {
			return content
		}
		if p.Products != nil {
			current.Products = cloneProducts(p.Products)
		}
		return current
	case FormPatch:
		current, ok := content.(FormContent)
		if !ok {
			return content
		}
		if p.EmailLabel != nil {
			current.EmailLabel = *p.EmailLabel
		}
		if p.MessageLabel != nil {
			current.MessageLabel = *p.MessageLabel
		}
		if p.ButtonText != nil {
			current.ButtonText = *p.ButtonText
		}
		return current
	default:
		return content
	}
}

func pageIndex(pages []PageConfig, pageID string) int {
	for i, page := range pages {
		if page.ID == pageID {
			return i
		}
	}
	return -1
}

func sectionIndex(pages []PageConfig, pageID, sectionID string) (int, int) {
	pageIdx := pageIndex(pages, pageID)
	if pageIdx < 0 {
		return -1, -1
	}
	for i, section := range pages[pageIdx].Sections {
		if section.ID == sectionID {
			return pageIdx, i
		}
	}
	return pageIdx, -1
}

func productIndex(products []ProductItem, productID string) int {
	for i, product := range products {
		if product.ID == productID {
			return i
		}
	}
	return -1
}
