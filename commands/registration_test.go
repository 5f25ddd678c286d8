package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/novaweb/go-sitebuilder/siteconfig"
)

type nopEditor struct{}

func (nopEditor) AddPage(context.Context, string) (siteconfig.PageConfig, error) {
	return siteconfig.PageConfig{}, nil
}
func (nopEditor) RemovePage(context.Context, string) error          { return nil }
func (nopEditor) RenamePage(context.Context, string, string) error  { return nil }
func (nopEditor) SetPageHidden(context.Context, string, bool) error { return nil }
func (nopEditor) AddSection(context.Context, string, siteconfig.SectionType) error {
	return nil
}
func (nopEditor) RemoveSection(context.Context, string, string) error { return nil }
func (nopEditor) SetCrisisMode(context.Context, siteconfig.CrisisPatch) error {
	return nil
}
func (nopEditor) Publish(context.Context) error { return nil }

type recordingRegistry struct {
	handlers []any
	err      error
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return r.err
}

type recordingSubscription struct {
	unsubscribed bool
}

func (s *recordingSubscription) Unsubscribe() { s.unsubscribed = true }

type recordingDispatcher struct {
	handlers      []any
	subscriptions []*recordingSubscription
}

func (d *recordingDispatcher) RegisterCommand(handler any) (CommandSubscription, error) {
	d.handlers = append(d.handlers, handler)
	sub := &recordingSubscription{}
	d.subscriptions = append(d.subscriptions, sub)
	return sub, nil
}

func TestRegisterEditorCommandsRequiresEditor(t *testing.T) {
	if _, err := RegisterEditorCommands(nil, RegistrationOptions{}); err == nil {
		t.Fatal("expected error for nil editor")
	}
}

func TestRegisterEditorCommandsBuildsEveryHandler(t *testing.T) {
	registry := &recordingRegistry{}
	dispatcher := &recordingDispatcher{}

	result, err := RegisterEditorCommands(nopEditor{}, RegistrationOptions{
		Registry:   registry,
		Dispatcher: dispatcher,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(result.Handlers) != 8 {
		t.Fatalf("expected 8 handlers, got %d", len(result.Handlers))
	}
	if len(registry.handlers) != len(result.Handlers) {
		t.Fatalf("registry saw %d handlers", len(registry.handlers))
	}
	if len(result.Subscriptions) != len(dispatcher.handlers) {
		t.Fatalf("expected one subscription per dispatched handler")
	}
}

func TestRegisterEditorCommandsJoinsRegistryErrors(t *testing.T) {
	boom := errors.New("registry full")
	registry := &recordingRegistry{err: boom}

	result, err := RegisterEditorCommands(nopEditor{}, RegistrationOptions{Registry: registry})
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined registry error, got %v", err)
	}
	if len(result.Handlers) != 8 {
		t.Fatalf("handlers must still be constructed, got %d", len(result.Handlers))
	}
}
