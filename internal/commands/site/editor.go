// Package sitecmd exposes the editing intents of the builder as go-command
// messages. Hosts that drive edits through a dispatcher (queues, schedulers,
// CLI verbs) get validation, logging, and error tagging for free; the
// dashboard session remains the single mutation path underneath.
package sitecmd

import (
	"context"

	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// Editor is the mutation surface command handlers drive. The dashboard
// session satisfies it.
type Editor interface {
	AddPage(ctx context.Context, name string) (siteconfig.PageConfig, error)
	RemovePage(ctx context.Context, pageID string) error
	RenamePage(ctx context.Context, pageID, name string) error
	SetPageHidden(ctx context.Context, pageID string, hidden bool) error
	AddSection(ctx context.Context, pageID string, sectionType siteconfig.SectionType) error
	RemoveSection(ctx context.Context, pageID, sectionID string) error
	SetCrisisMode(ctx context.Context, patch siteconfig.CrisisPatch) error
	Publish(ctx context.Context) error
}
