package sitecmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/novaweb/go-sitebuilder/internal/commands"
	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
)

const (
	addPageMessageType       = "sitebuilder.page.add"
	removePageMessageType    = "sitebuilder.page.remove"
	renamePageMessageType    = "sitebuilder.page.rename"
	setPageHiddenMessageType = "sitebuilder.page.set_hidden"
)

// AddPageCommand creates a new custom page. An empty name falls back to the
// localized placeholder.
type AddPageCommand struct {
	Name string `json:"name"`
}

// Type implements command.Message.
func (AddPageCommand) Type() string { return addPageMessageType }

// Validate implements command.Message; every name is acceptable.
func (AddPageCommand) Validate() error { return nil }

// RemovePageCommand deletes a page by id.
type RemovePageCommand struct {
	PageID string `json:"pageId"`
}

// Type implements command.Message.
func (RemovePageCommand) Type() string { return removePageMessageType }

// Validate ensures the target page id is present.
func (m RemovePageCommand) Validate() error {
	return requirePageID(m.PageID, "sitebuilder.page.remove")
}

// RenamePageCommand updates a page's display name.
type RenamePageCommand struct {
	PageID string `json:"pageId"`
	Name   string `json:"name"`
}

// Type implements command.Message.
func (RenamePageCommand) Type() string { return renamePageMessageType }

// Validate ensures the target page id is present.
func (m RenamePageCommand) Validate() error {
	return requirePageID(m.PageID, "sitebuilder.page.rename")
}

// SetPageHiddenCommand toggles navigation visibility of a page.
type SetPageHiddenCommand struct {
	PageID string `json:"pageId"`
	Hidden bool   `json:"hidden"`
}

// Type implements command.Message.
func (SetPageHiddenCommand) Type() string { return setPageHiddenMessageType }

// Validate ensures the target page id is present.
func (m SetPageHiddenCommand) Validate() error {
	return requirePageID(m.PageID, "sitebuilder.page.set_hidden")
}

func requirePageID(pageID, codePrefix string) error {
	if strings.TrimSpace(pageID) == "" {
		return validation.Errors{
			"pageId": validation.NewError(codePrefix+".page_id_required", "pageId is required"),
		}
	}
	return nil
}

// NewAddPageHandler wires AddPageCommand to the editor.
func NewAddPageHandler(editor Editor, logger interfaces.Logger, opts ...commands.HandlerOption[AddPageCommand]) *commands.Handler[AddPageCommand] {
	exec := func(ctx context.Context, msg AddPageCommand) error {
		_, err := editor.AddPage(ctx, msg.Name)
		return err
	}
	return commands.NewHandler(exec, withDefaults("page.add", logger, opts)...)
}

// NewRemovePageHandler wires RemovePageCommand to the editor.
func NewRemovePageHandler(editor Editor, logger interfaces.Logger, opts ...commands.HandlerOption[RemovePageCommand]) *commands.Handler[RemovePageCommand] {
	exec := func(ctx context.Context, msg RemovePageCommand) error {
		return editor.RemovePage(ctx, msg.PageID)
	}
	return commands.NewHandler(exec, withDefaults("page.remove", logger, opts)...)
}

// NewRenamePageHandler wires RenamePageCommand to the editor.
func NewRenamePageHandler(editor Editor, logger interfaces.Logger, opts ...commands.HandlerOption[RenamePageCommand]) *commands.Handler[RenamePageCommand] {
	exec := func(ctx context.Context, msg RenamePageCommand) error {
		return editor.RenamePage(ctx, msg.PageID, msg.Name)
	}
	return commands.NewHandler(exec, withDefaults("page.rename", logger, opts)...)
}

// NewSetPageHiddenHandler wires SetPageHiddenCommand to the editor.
func NewSetPageHiddenHandler(editor Editor, logger interfaces.Logger, opts ...commands.HandlerOption[SetPageHiddenCommand]) *commands.Handler[SetPageHiddenCommand] {
	exec := func(ctx context.Context, msg SetPageHiddenCommand) error {
		return editor.SetPageHidden(ctx, msg.PageID, msg.Hidden)
	}
	return commands.NewHandler(exec, withDefaults("page.set_hidden", logger, opts)...)
}

func withDefaults[T command.Message](operation string, logger interfaces.Logger, opts []commands.HandlerOption[T]) []commands.HandlerOption[T] {
	defaults := []commands.HandlerOption[T]{
		commands.WithLogger[T](logger),
		commands.WithOperation[T](operation),
	}
	return append(defaults, opts...)
}
