package store

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/novaweb/go-sitebuilder/internal/logging"
	"github.com/novaweb/go-sitebuilder/pkg/interfaces"
	"github.com/novaweb/go-sitebuilder/siteconfig"
)

// BunStore persists snapshots through go-repository-bun with optional
// read-through caching.
type BunStore struct {
	db     *bun.DB
	repo   repository.Repository[*SiteRecord]
	logger interfaces.Logger
	now    func() time.Time
}

var _ Store = (*BunStore)(nil)

// BunStoreOption configures a BunStore.
type BunStoreOption func(*BunStore)

// WithCache wraps the repository with a read-through cache layer.
func WithCache(service cache.CacheService, serializer cache.KeySerializer) BunStoreOption {
	return func(s *BunStore) {
		if service != nil && serializer != nil {
			s.repo = repositorycache.New(s.repo, service, serializer)
		}
	}
}

// WithStoreLogger attaches a logger provider; entries land in the store
// namespace.
func WithStoreLogger(provider interfaces.LoggerProvider) BunStoreOption {
	return func(s *BunStore) {
		s.logger = logging.StoreLogger(provider)
	}
}

// NewBunStore creates a snapshot store on top of a bun database handle.
func NewBunStore(db *bun.DB, opts ...BunStoreOption) *BunStore {
	s := &BunStore{
		db:     db,
		repo:   NewSiteRecordRepository(db),
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureSchema creates the snapshot table when it does not exist yet.
func (s *BunStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*SiteRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("store: ensure schema: %w", err)
	}
	return nil
}

// Load fetches and decodes the snapshot for a site key. The stored document
// passes through schema and invariant validation; a corrupted row surfaces as
// a decode error rather than a half-formed configuration.
func (s *BunStore) Load(ctx context.Context, siteKey string) (siteconfig.SiteConfig, error) {
	record, err := s.repo.GetByIdentifier(ctx, siteKey)
	if err != nil {
		return siteconfig.SiteConfig{}, mapRepositoryError(err, siteKey)
	}
	cfg, err := siteconfig.Decode(record.Config)
	if err != nil {
		return siteconfig.SiteConfig{}, fmt.Errorf("store: snapshot %s: %w", siteKey, err)
	}
	return cfg, nil
}

// Save upserts the snapshot for a site key as one JSON document.
func (s *BunStore) Save(ctx context.Context, siteKey string, cfg siteconfig.SiteConfig) error {
	if err := siteconfig.Validate(cfg); err != nil {
		return err
	}
	encoded, err := siteconfig.Encode(cfg)
	if err != nil {
		return fmt.Errorf("store: encode snapshot %s: %w", siteKey, err)
	}

	existing, err := s.repo.GetByIdentifier(ctx, siteKey)
	if err != nil {
		if !goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return fmt.Errorf("store: lookup snapshot %s: %w", siteKey, err)
		}
		record := &SiteRecord{
			ID:        uuid.New(),
			Key:       siteKey,
			Config:    encoded,
			CreatedAt: s.now().UTC(),
			UpdatedAt: s.now().UTC(),
		}
		if _, err := s.repo.Create(ctx, record); err != nil {
			return fmt.Errorf("store: create snapshot %s: %w", siteKey, err)
		}
		s.logger.Info("snapshot created", "site_key", siteKey, "bytes", len(encoded))
		return nil
	}

	existing.Config = encoded
	existing.UpdatedAt = s.now().UTC()
	if _, err := s.repo.Update(ctx, existing,
		repository.UpdateByID(existing.ID.String()),
		repository.UpdateColumns("config", "updated_at"),
	); err != nil {
		return fmt.Errorf("store: update snapshot %s: %w", siteKey, err)
	}
	s.logger.Info("snapshot updated", "site_key", siteKey, "bytes", len(encoded))
	return nil
}

func mapRepositoryError(err error, siteKey string) error {
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &siteconfig.NotFoundError{Resource: "site_config", Key: siteKey}
	}
	return fmt.Errorf("store: load snapshot %s: %w", siteKey, err)
}
