// Package commands exposes the edit-intent command handlers so hosts can
// register them with a dispatcher, CLI registry, or queue of their choosing.
package commands

import (
	"errors"

	sitecmd "github.com/novaweb/go-sitebuilder/internal/commands/site"
	"github.com/novaweb/go-sitebuilder/internal/logging"
	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
)

// Editor re-exports the surface command handlers drive. The dashboard session
// satisfies it.
type Editor = sitecmd.Editor

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
}

// RegistrationResult captures the constructed command handlers and any
// dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterEditorCommands builds every edit-intent handler over the given
// editor and optionally registers them with registry/dispatcher integrations.
func RegisterEditorCommands(editor Editor, opts RegistrationOptions) (*RegistrationResult, error) {
	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}
	if editor == nil {
		return result, errors.New("commands: editor is required")
	}

	var errs error
	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}
		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	logger := CommandLogger(opts.LoggerProvider, "site")

	register(sitecmd.NewAddPageHandler(editor, logger))
	register(sitecmd.NewRemovePageHandler(editor, logger))
	register(sitecmd.NewRenamePageHandler(editor, logger))
	register(sitecmd.NewSetPageHiddenHandler(editor, logger))
	register(sitecmd.NewAddSectionHandler(editor, logger))
	register(sitecmd.NewRemoveSectionHandler(editor, logger))
	register(sitecmd.NewSetCrisisModeHandler(editor, logger))
	register(sitecmd.NewPublishSiteHandler(editor, logger))

	return result, errs
}

// CommandLogger returns the logger namespace for a command module.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := "sitebuilder.commands"
	if module != "" {
		name += "." + module
	}
	return logging.ModuleLogger(provider, name)
}
