package sitecmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/novaweb/go-sitebuilder/internal/commands"
	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
	"github.com/novaweb/go-sitebuilder/siteconfig"
)

const (
	setCrisisModeMessageType = "sitebuilder.site.set_crisis_mode"
	publishSiteMessageType   = "sitebuilder.site.publish"
)

// SetCrisisModeCommand merges partial crisis-mode fields into the site
// override. Nil fields are preserved.
type SetCrisisModeCommand struct {
	Enabled *bool   `json:"enabled,omitempty"`
	Title   *string `json:"title,omitempty"`
	Message *string `json:"message,omitempty"`
}

// Type implements command.Message.
func (SetCrisisModeCommand) Type() string { return setCrisisModeMessageType }

// Validate rejects a takeover enabled with no title to show.
func (m SetCrisisModeCommand) Validate() error {
	if m.Enabled != nil && *m.Enabled && m.Title != nil && strings.TrimSpace(*m.Title) == "" {
		return validation.Errors{
			"title": validation.NewError("sitebuilder.site.set_crisis_mode.title_required", "title cannot be blank when enabling crisis mode"),
		}
	}
	return nil
}

// PublishSiteCommand persists the current draft and runs a build.
type PublishSiteCommand struct{}

// Type implements command.Message.
func (PublishSiteCommand) Type() string { return publishSiteMessageType }

// Validate implements command.Message.
func (PublishSiteCommand) Validate() error { return nil }

// NewSetCrisisModeHandler wires SetCrisisModeCommand to the editor.
func NewSetCrisisModeHandler(editor Editor, logger interfaces.Logger, opts ...commands.HandlerOption[SetCrisisModeCommand]) *commands.Handler[SetCrisisModeCommand] {
	exec := func(ctx context.Context, msg SetCrisisModeCommand) error {
		return editor.SetCrisisMode(ctx, siteconfig.CrisisPatch{
			Enabled: msg.Enabled,
			Title:   msg.Title,
			Message: msg.Message,
		})
	}
	return commands.NewHandler(exec, withDefaults("site.set_crisis_mode", logger, opts)...)
}

// NewPublishSiteHandler wires PublishSiteCommand to the editor.
func NewPublishSiteHandler(editor Editor, logger interfaces.Logger, opts ...commands.HandlerOption[PublishSiteCommand]) *commands.Handler[PublishSiteCommand] {
	exec := func(ctx context.Context, _ PublishSiteCommand) error {
		return editor.Publish(ctx)
	}
	return commands.NewHandler(exec, withDefaults("site.publish", logger, opts)...)
}
