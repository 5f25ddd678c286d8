package publisher

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-urlkit"
)

const (
	routeGroupSite = "site"
	routeHome      = "home"
	routePage      = "page"
)

// Routes builds public URLs for published pages. It wraps a go-urlkit route
// manager configured with the site's base URL so manifests and sitemaps carry
// absolute addresses.
type Routes struct {
	manager *urlkit.RouteManager
}

// NewRoutes wires the route table for a published site rooted at baseURL.
func NewRoutes(baseURL string) *Routes {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    routeGroupSite,
				BaseURL: strings.TrimRight(baseURL, "/"),
				Paths: map[string]string{
					routeHome: "/",
					routePage: "/:slug/",
				},
			},
		},
	})
	return &Routes{manager: manager}
}

// PageURL returns the absolute URL a page slug is published under.
func (r *Routes) PageURL(pageSlug string) (string, error) {
	group, err := r.group()
	if err != nil {
		return "", err
	}
	if pageSlug == homeSlug {
		return buildRoute(group, routeHome, nil)
	}
	return buildRoute(group, routePage, map[string]string{"slug": pageSlug})
}

func (r *Routes) group() (group *urlkit.Group, err error) {
	if r == nil || r.manager == nil {
		return nil, fmt.Errorf("publisher: routes not configured")
	}
	// urlkit panics on unknown groups; surface that as an error instead.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("publisher: route group %q not found", routeGroupSite)
		}
	}()
	group = r.manager.Group(routeGroupSite)
	return group, err
}

func buildRoute(group *urlkit.Group, route string, params map[string]string) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("publisher: route %q not found", route)
		}
	}()
	builder := group.Builder(route)
	for key, value := range params {
		builder.WithParam(key, value)
	}
	return builder.Build()
}
