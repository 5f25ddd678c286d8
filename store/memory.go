package store

import (
	"context"
	"sync"

	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// MemoryStore keeps snapshots in process memory. It backs tests and
// embedded hosts that do not need durability.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]siteconfig.SiteConfig
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: map[string]siteconfig.SiteConfig{}}
}

// Load returns a deep copy of the stored snapshot so callers can never reach
// back into the store's state.
func (s *MemoryStore) Load(_ context.Context, siteKey string) (siteconfig.SiteConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.snapshots[siteKey]
	if !ok {
		return siteconfig.SiteConfig{}, &siteconfig.NotFoundError{Resource: "site_config", Key: siteKey}
	}
	return siteconfig.Clone(cfg), nil
}

// Save validates and stores a deep copy of the snapshot.
func (s *MemoryStore) Save(_ context.Context, siteKey string, cfg siteconfig.SiteConfig) error {
	if err := siteconfig.Validate(cfg); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[siteKey] = siteconfig.Clone(cfg)
	return nil
}
