package siteconfig

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the structural invariants of a configuration: a non-empty
// site name, at least one page, ids unique within their containing collection,
// known page/section types, and content payloads matching their section type.
// Mutators preserve these by construction; Validate guards documents arriving
// from the persistence boundary.
func Validate(cfg SiteConfig) error {
	errs := validation.Errors{}

	if strings.TrimSpace(cfg.SiteName) == "" {
		errs["siteName"] = validation.NewError("sitebuilder.config.site_name_required", "siteName is required")
	}
	if len(cfg.Pages) == 0 {
		errs["pages"] = validation.NewError("sitebuilder.config.pages_required", "a site requires at least one page")
	}

	pageIDs := map[string]bool{}
	for i, page := range cfg.Pages {
		key := fmt.Sprintf("pages.%d", i)
		if strings.TrimSpace(page.ID) == "" {
			errs[key+".id"] = validation.NewError("sitebuilder.config.page_id_required", "page id is required")
			continue
		}
		if pageIDs[page.ID] {
			errs[key+".id"] = validation.NewError("sitebuilder.config.page_id_duplicate", fmt.Sprintf("duplicate page id %q", page.ID))
		}
		pageIDs[page.ID] = true

		if !knownPageType(page.Type) {
			errs[key+".type"] = validation.NewError("sitebuilder.config.page_type_unknown", fmt.Sprintf("unknown page type %q", page.Type))
		}

		sectionIDs := map[string]bool{}
		for j, section := range page.Sections {
			sectionKey := fmt.Sprintf("%s.sections.%d", key, j)
			if strings.TrimSpace(section.ID) == "" {
				errs[sectionKey+".id"] = validation.NewError("sitebuilder.config.section_id_required", "section id is required")
				continue
			}
			if sectionIDs[section.ID] {
				errs[sectionKey+".id"] = validation.NewError("sitebuilder.config.section_id_duplicate", fmt.Sprintf("duplicate section id %q", section.ID))
			}
			sectionIDs[section.ID] = true

			contentType, ok := ContentType(section.Content)
			if !ok {
				errs[sectionKey+".content"] = validation.NewError("sitebuilder.config.section_content_required", "section content is required")
				continue
			}
			if contentType != section.Type {
				errs[sectionKey+".content"] = validation.NewError("sitebuilder.config.section_content_mismatch", fmt.Sprintf("content payload is %q, section type is %q", contentType, section.Type))
			}

			if products, ok := section.Content.(ProductsContent); ok {
				productIDs := map[string]bool{}
				for k, product := range products.Products {
					productKey := fmt.Sprintf("%s.products.%d.id", sectionKey, k)
					if strings.TrimSpace(product.ID) == "" {
						errs[productKey] = validation.NewError("sitebuilder.config.product_id_required", "product id is required")
						continue
					}
					if productIDs[product.ID] {
						errs[productKey] = validation.NewError("sitebuilder.config.product_id_duplicate", fmt.Sprintf("duplicate product id %q", product.ID))
					}
					productIDs[product.ID] = true
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func knownPageType(pageType PageType) bool {
	switch pageType {
	case PageTypeHome, PageTypeAbout, PageTypeContact, PageTypeCustom, PageTypeCrisis:
		return true
	default:
		return false
	}
}
