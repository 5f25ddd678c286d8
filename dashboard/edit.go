package dashboard

import (
	"context"

	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// Edit methods apply the pure configuration mutators to the draft under the
// session lock. Operations referencing missing entities follow the mutator
// contract and succeed as no-ops; the only typed rejection is the
// minimum-one-page invariant.

// AddPage appends a custom page and selects it.
func (s *Session) AddPage(_ context.Context, name string) (siteconfig.PageConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, page := siteconfig.AddPage(s.cfg, s.gen, name)
	s.cfg = next
	s.activePageID = page.ID
	s.logger.Debug("page added", "page_id", page.ID, "name", page.Name)
	return page, nil
}

// RemovePage deletes a page, reselecting the first page when the active one
// goes away. Removing the last page fails with a MinimumPagesError.
func (s *Session) RemovePage(_ context.Context, pageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := siteconfig.RemovePage(s.cfg, pageID)
	if err != nil {
		return err
	}
	s.cfg = next
	s.ensureActivePage()
	s.logger.Debug("page removed", "page_id", pageID)
	return nil
}

// RenamePage updates a page's display name.
func (s *Session) RenamePage(_ context.Context, pageID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = siteconfig.RenamePage(s.cfg, pageID, name)
	return nil
}

// SetPageHidden toggles a page's presence in generated navigation.
func (s *Session) SetPageHidden(_ context.Context, pageID string, hidden bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = siteconfig.SetPageHidden(s.cfg, pageID, hidden)
	return nil
}

// AddSection appends a section with its default payload.
func (s *Session) AddSection(_ context.Context, pageID string, sectionType siteconfig.SectionType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = siteconfig.AddSection(s.cfg, s.gen, pageID, sectionType)
	return nil
}

// RemoveSection deletes a section from a page.
func (s *Session) RemoveSection(_ context.Context, pageID, sectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = siteconfig.RemoveSection(s.cfg, pageID, sectionID)
	return nil
}

// PatchSectionContent merges a partial content update into a section.
func (s *Session) PatchSectionContent(_ context.Context, pageID, sectionID string, patch siteconfig.ContentPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = siteconfig.PatchSectionContent(s.cfg, pageID, sectionID, patch)
	return nil
}

// AddProduct appends a default product card to a products section.
func (s *Session) AddProduct(_ context.Context, pageID, sectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = siteconfig.AddProduct(s.cfg, s.gen, pageID, sectionID)
	return nil
}

// UpdateProduct sets one field of one product.
func (s *Session) UpdateProduct(_ context.Context, pageID, sectionID, productID string, field siteconfig.ProductField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = siteconfig.UpdateProduct(s.cfg, pageID, sectionID, productID, field, value)
	return nil
}

// RemoveProduct deletes a product from its section.
func (s *Session) RemoveProduct(_ context.Context, pageID, sectionID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = siteconfig.RemoveProduct(s.cfg, pageID, sectionID, productID)
	return nil
}

// SetCrisisMode merges partial crisis-mode fields into the site override.
func (s *Session) SetCrisisMode(_ context.Context, patch siteconfig.CrisisPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = siteconfig.SetCrisisMode(s.cfg, patch)
	return nil
}
