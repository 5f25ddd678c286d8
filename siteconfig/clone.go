package siteconfig

// Clone returns a deep copy of the configuration. Mutators clone before they
// touch anything so callers keep structural-sharing-free snapshots; "last
// write wins" then needs no locking discipline.
func Clone(cfg SiteConfig) SiteConfig {
	out := cfg
	out.Pages = clonePages(cfg.Pages)
	return out
}

func clonePages(pages []PageConfig) []PageConfig {
	if pages == nil {
		return nil
	}
	out := make([]PageConfig, len(pages))
	for i, page := range pages {
		out[i] = clonePage(page)
	}
	return out
}

func clonePage(page PageConfig) PageConfig {
	out := page
	out.Sections = cloneSections(page.Sections)
	return out
}

func cloneSections(sections []SectionConfig) []SectionConfig {
	if sections == nil {
		return nil
	}
	out := make([]SectionConfig, len(sections))
	for i, section := range sections {
		out[i] = cloneSection(section)
	}
	return out
}

func cloneSection(section SectionConfig) SectionConfig {
	out := section
	out.Content = cloneContent(section.Content)
	return out
}

func cloneContent(content Content) Content {
	switch c := content.(type) {
	case HeroContent:
		c.BgImage = cloneStringPointer(c.BgImage)
		return c
	case TextContent:
		return c
	case ImageContent:
		c.Src = cloneStringPointer(c.Src)
		return c
	case ProductsContent:
		c.Products = cloneProducts(c.Products)
		return c
	case FormContent:
		return c
	default:
		return content
	}
}

func cloneProducts(products []ProductItem) []ProductItem {
	if products == nil {
		return nil
	}
	out := make([]ProductItem, len(products))
	for i, product := range products {
		out[i] = product
		out[i].Image = cloneStringPointer(product.Image)
	}
	return out
}

func cloneStringPointer(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
