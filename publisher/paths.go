package publisher

import (
	"fmt"
	"path"

	"github.com/goliatone/go-slug"

	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// homeSlug is the reserved slug of the page served at the site root.
const homeSlug = "index"

// PageSlug derives the stable path segment for a page. Home pages collapse to
// the root document; everything else slugs its display name. A name that
// normalizes to nothing falls back to the page id so every page keeps a
// routable address.
func PageSlug(page siteconfig.PageConfig) string {
	if page.Type == siteconfig.PageTypeHome {
		return homeSlug
	}
	normalized, err := slug.Normalize(page.Name)
	if err != nil || normalized == "" {
		normalized, err = slug.Normalize(page.ID)
		if err != nil || normalized == "" {
			return page.ID
		}
	}
	return normalized
}

// pageSlugs assigns one unique slug per page, disambiguating collisions in
// page order with a numeric suffix. Order is deterministic so repeated builds
// of the same configuration land on the same layout.
func pageSlugs(pages []siteconfig.PageConfig) map[string]string {
	slugs := make(map[string]string, len(pages))
	taken := make(map[string]bool, len(pages))
	for _, page := range pages {
		candidate := PageSlug(page)
		unique := candidate
		for n := 2; taken[unique]; n++ {
			unique = fmt.Sprintf("%s-%d", candidate, n)
		}
		taken[unique] = true
		slugs[page.ID] = unique
	}
	return slugs
}

// artifactPath maps a slug to its document location inside the build output.
// The home document lives at the root; every other page gets a directory with
// an index document so static hosts serve clean URLs.
func artifactPath(pageSlug string) string {
	if pageSlug == homeSlug {
		return "index.html"
	}
	return path.Join(pageSlug, "index.html")
}
