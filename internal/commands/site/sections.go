package sitecmd

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/novaweb/go-sitebuilder/internal/commands"
	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
	"github.com/novaweb/go-sitebuilder/siteconfig"
)

const (
	addSectionMessageType    = "sitebuilder.section.add"
	removeSectionMessageType = "sitebuilder.section.remove"
)

// AddSectionCommand appends a default section of the given type to a page.
type AddSectionCommand struct {
	PageID      string                 `json:"pageId"`
	SectionType siteconfig.SectionType `json:"sectionType"`
}

// Type implements command.Message.
func (AddSectionCommand) Type() string { return addSectionMessageType }

// Validate ensures the page id is present and the section type is known.
func (m AddSectionCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.PageID) == "" {
		errs["pageId"] = validation.NewError("sitebuilder.section.add.page_id_required", "pageId is required")
	}
	if !knownSectionType(m.SectionType) {
		errs["sectionType"] = validation.NewError(
			"sitebuilder.section.add.type_unknown",
			fmt.Sprintf("unknown section type %q", m.SectionType),
		)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RemoveSectionCommand deletes one section from a page.
type RemoveSectionCommand struct {
	PageID    string `json:"pageId"`
	SectionID string `json:"sectionId"`
}

// Type implements command.Message.
func (RemoveSectionCommand) Type() string { return removeSectionMessageType }

// Validate ensures both identifiers are present.
func (m RemoveSectionCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.PageID) == "" {
		errs["pageId"] = validation.NewError("sitebuilder.section.remove.page_id_required", "pageId is required")
	}
	if strings.TrimSpace(m.SectionID) == "" {
		errs["sectionId"] = validation.NewError("sitebuilder.section.remove.section_id_required", "sectionId is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func knownSectionType(sectionType siteconfig.SectionType) bool {
	for _, known := range siteconfig.SectionTypes() {
		if sectionType == known {
			return true
		}
	}
	return false
}

// NewAddSectionHandler wires AddSectionCommand to the editor.
func NewAddSectionHandler(editor Editor, logger interfaces.Logger, opts ...commands.HandlerOption[AddSectionCommand]) *commands.Handler[AddSectionCommand] {
	exec := func(ctx context.Context, msg AddSectionCommand) error {
		return editor.AddSection(ctx, msg.PageID, msg.SectionType)
	}
	return commands.NewHandler(exec, withDefaults("section.add", logger, opts)...)
}

// NewRemoveSectionHandler wires RemoveSectionCommand to the editor.
func NewRemoveSectionHandler(editor Editor, logger interfaces.Logger, opts ...commands.HandlerOption[RemoveSectionCommand]) *commands.Handler[RemoveSectionCommand] {
	exec := func(ctx context.Context, msg RemoveSectionCommand) error {
		return editor.RemoveSection(ctx, msg.PageID, msg.SectionID)
	}
	return commands.NewHandler(exec, withDefaults("section.remove", logger, opts)...)
}
