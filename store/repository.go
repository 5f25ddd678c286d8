package store

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewSiteRecordRepository creates a repository for configuration snapshots.
func NewSiteRecordRepository(db *bun.DB) repository.Repository[*SiteRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*SiteRecord]{
		NewRecord: func() *SiteRecord { return &SiteRecord{} },
		GetID: func(record *SiteRecord) uuid.UUID {
			return record.ID
		},
		SetID: func(record *SiteRecord, id uuid.UUID) {
			record.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(record *SiteRecord) string {
			return record.Key
		},
	})
}
