package siteconfig

// PageType identifies the role of a page within a site. Built-in types are
// protected from deletion; only custom pages are user-removable.
type PageType string

const (
	PageTypeHome    PageType = "home"
	PageTypeAbout   PageType = "about"
	PageTypeContact PageType = "contact"
	PageTypeCustom  PageType = "custom"
	PageTypeCrisis  PageType = "crisis"
)

// SectionType identifies the kind of content block a section renders.
type SectionType string

const (
	SectionTypeHero     SectionType = "hero"
	SectionTypeText     SectionType = "text"
	SectionTypeImage    SectionType = "image"
	SectionTypeProducts SectionType = "products"
	SectionTypeForm     SectionType = "form"
)

// SectionTypes lists every supported section type in a stable order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionTypeHero,
		SectionTypeText,
		SectionTypeImage,
		SectionTypeProducts,
		SectionTypeForm,
	}
}

// Theme carries the site-wide styling triple. It is stored and echoed; the
// renderer owns the actual stylesheet.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
}

// CrisisMode is a whole-site override. When enabled, rendering ignores the
// active page entirely and produces a single maintenance-style document.
type CrisisMode struct {
	Enabled bool   `json:"enabled"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// SiteConfig is the root aggregate describing an entire editable site.
type SiteConfig struct {
	SiteName   string       `json:"siteName"`
	Tagline    string       `json:"tagline,omitempty"`
	Logo       string       `json:"logo,omitempty"`
	Theme      Theme        `json:"theme"`
	Pages      []PageConfig `json:"pages"`
	CrisisMode CrisisMode   `json:"crisisMode"`
}

// PageConfig is one page of the site: an identity, a display name, and an
// ordered list of sections. The id is assigned at creation and never changes.
type PageConfig struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     PageType        `json:"type"`
	Sections []SectionConfig `json:"sections"`
	IsHidden bool            `json:"isHidden,omitempty"`
}

// SectionConfig is one typed content block within a page. Type is immutable
// after creation; only Content mutates. Content always holds the variant
// matching Type.
type SectionConfig struct {
	ID      string
	Type    SectionType
	Content Content
}

// Content is the closed union of per-section-kind payloads. Exactly the five
// section types implement it; consumers switch exhaustively instead of
// trusting untyped field access.
type Content interface {
	sectionType() SectionType
}

// HeroContent is the payload of a hero section.
type HeroContent struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	BgImage  *string `json:"bgImage"`
}

func (HeroContent) sectionType() SectionType { return SectionTypeHero }

// TextContent is the payload of a text section. Text may contain embedded
// newlines; the renderer preserves them.
type TextContent struct {
	Text string `json:"text"`
}

func (TextContent) sectionType() SectionType { return SectionTypeText }

// ImageContent is the payload of an image section. A nil Src renders as a
// placeholder block, never as a broken image reference.
type ImageContent struct {
	Src *string `json:"src"`
}

func (ImageContent) sectionType() SectionType { return SectionTypeImage }

// ProductsContent is the payload of a products carousel section.
type ProductsContent struct {
	Products []ProductItem `json:"products"`
}

func (ProductsContent) sectionType() SectionType { return SectionTypeProducts }

// FormContent is the payload of a contact form section. The preview renders
// an inert form using these three labels.
type FormContent struct {
	EmailLabel   string `json:"emailLabel"`
	MessageLabel string `json:"messageLabel"`
	ButtonText   string `json:"buttonText"`
}

func (FormContent) sectionType() SectionType { return SectionTypeForm }

// ProductItem is one card in a products section. Price is free-form text and
// intentionally not numeric-validated.
type ProductItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

// ContentType reports the section type a Content payload belongs to. A nil
// payload has no type.
func ContentType(c Content) (SectionType, bool) {
	if c == nil {
		return "", false
	}
	return c.sectionType(), true
}
