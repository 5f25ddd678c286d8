package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SiteRecord is the database row holding one configuration snapshot.
type SiteRecord struct {
	bun.BaseModel `bun:"table:site_configs,alias:sc"`

	ID        uuid.UUID       `bun:",pk,type:uuid"       json:"id"`
	Key       string          `bun:"key,notnull,unique"  json:"key"`
	Config    json.RawMessage `bun:"config,type:jsonb,notnull" json:"config"`
	CreatedAt time.Time       `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time       `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
