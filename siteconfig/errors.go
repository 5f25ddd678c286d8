package siteconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSiteNameRequired   = errors.New("siteconfig: site name is required")
	ErrMinimumPages       = errors.New("siteconfig: a site requires at least one page")
	ErrDuplicateID        = errors.New("siteconfig: duplicate identifier")
	ErrUnknownSectionType = errors.New("siteconfig: unknown section type")
	ErrUnknownPageType    = errors.New("siteconfig: unknown page type")
	ErrContentMismatch    = errors.New("siteconfig: content payload does not match section type")
	ErrConfigInvalid      = errors.New("siteconfig: configuration document is invalid")
)

// MinimumPagesError rejects a page removal that would leave the site empty.
// The configuration it was raised against remains valid and unchanged.
type MinimumPagesError struct {
	PageID string
}

func (e *MinimumPagesError) Error() string {
	if e == nil || strings.TrimSpace(e.PageID) == "" {
		return ErrMinimumPages.Error()
	}
	return fmt.Sprintf("%s: cannot remove page %q", ErrMinimumPages.Error(), e.PageID)
}

func (e *MinimumPagesError) Unwrap() error {
	return ErrMinimumPages
}

// NotFoundError reports a stale reference at a collaborator boundary. Mutators
// never raise it (missing references are silent no-ops); stores and hosts do.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "siteconfig: not found"
	}
	if strings.TrimSpace(e.Key) == "" {
		return fmt.Sprintf("siteconfig: %s not found", e.Resource)
	}
	return fmt.Sprintf("siteconfig: %s %q not found", e.Resource, e.Key)
}
