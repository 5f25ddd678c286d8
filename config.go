package sitebuilder

import (
	"errors"
	"strings"
	"time"
)

// Validation errors surfaced by Config.Validate.
var (
	ErrSiteKeyRequired          = errors.New("sitebuilder config: site key is required")
	ErrStorageProviderUnknown   = errors.New("sitebuilder config: storage provider is invalid")
	ErrStorageDSNRequired       = errors.New("sitebuilder config: storage dsn is required for database providers")
	ErrPublishOutputDirRequired = errors.New("sitebuilder config: publish output directory is required")
	ErrUploadProviderUnknown    = errors.New("sitebuilder config: upload provider is invalid")
	ErrCloudinaryURLRequired    = errors.New("sitebuilder config: cloudinary url is required for the cloudinary provider")
	ErrLoggingFormatInvalid     = errors.New("sitebuilder config: logging format is invalid")
	ErrLoggingLevelInvalid      = errors.New("sitebuilder config: logging level is invalid")
)

// Storage providers.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite3"
	StoragePostgres = "postgres"
)

// Upload providers.
const (
	UploadInline     = "inline"
	UploadCloudinary = "cloudinary"
)

// Config aggregates adapter bindings for the site builder module. Fields use
// simple types so host applications can map their own configuration onto it.
type Config struct {
	SiteKey string
	Storage StorageConfig
	Publish PublishConfig
	Upload  UploadConfig
	Logging LoggingConfig
}

// StorageConfig selects where configuration snapshots live.
type StorageConfig struct {
	Provider     string
	DSN          string
	CacheEnabled bool
	CacheTTL     time.Duration
}

// PublishConfig controls build output.
type PublishConfig struct {
	OutputDir string
	BaseURL   string
}

// UploadConfig selects the image upload backend.
type UploadConfig struct {
	Provider      string
	CloudinaryURL string
	Folder        string
	MaxInlineSize int64
}

// LoggingConfig captures go-logger options.
type LoggingConfig struct {
	Enabled   bool
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns a configuration suitable for embedded use: in-memory
// snapshots, inline image uploads, builds under ./public.
func DefaultConfig() Config {
	return Config{
		SiteKey: "default",
		Storage: StorageConfig{
			Provider: StorageMemory,
			CacheTTL: 5 * time.Minute,
		},
		Publish: PublishConfig{
			OutputDir: "./public",
		},
		Upload: UploadConfig{
			Provider: UploadInline,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "console",
		},
	}
}

// Validate checks cross-field consistency before the module boots.
func (c Config) Validate() error {
	if strings.TrimSpace(c.SiteKey) == "" {
		return ErrSiteKeyRequired
	}

	switch c.Storage.Provider {
	case StorageMemory:
	case StorageSQLite, StoragePostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return ErrStorageProviderUnknown
	}

	if strings.TrimSpace(c.Publish.OutputDir) == "" {
		return ErrPublishOutputDirRequired
	}

	switch c.Upload.Provider {
	case UploadInline:
	case UploadCloudinary:
		if strings.TrimSpace(c.Upload.CloudinaryURL) == "" {
			return ErrCloudinaryURLRequired
		}
	default:
		return ErrUploadProviderUnknown
	}

	if c.Logging.Enabled {
		switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
		case "", "json", "console", "pretty":
		default:
			return ErrLoggingFormatInvalid
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
		case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return ErrLoggingLevelInvalid
		}
	}
	return nil
}
