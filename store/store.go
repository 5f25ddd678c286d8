// Package store persists site configuration snapshots. Configurations are
// stored as whole JSON documents keyed by a site key; there is no partial
// update path, a save always replaces the previous snapshot.
package store

import (
	"context"

	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// Store is the persistence contract for configuration snapshots. Load returns
// a *siteconfig.NotFoundError (resource "site_config") when no snapshot exists
// for the key; callers decide whether that means "start from the starter
// config" or a hard failure.
type Store interface {
	Load(ctx context.Context, siteKey string) (siteconfig.SiteConfig, error)
	Save(ctx context.Context, siteKey string, cfg siteconfig.SiteConfig) error
}

// DefaultSiteKey names the snapshot used by single-site deployments.
const DefaultSiteKey = "default"
