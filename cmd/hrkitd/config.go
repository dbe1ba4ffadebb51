package main

import "time"

// appConfig selects the service environment and which optional backends the
// process wires in. Per-backend settings live in their packages' own Config
// structs and load from the environment separately.
type appConfig struct {
	ServiceName string `env:"APP_NAME" envDefault:"hrkitd"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	// StorageDriver picks the document repository: "mongo" or "postgres".
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"mongo"`

	// CacheDriver picks the extraction cache: "memory", "redis", or "none".
	CacheDriver   string `env:"CACHE_DRIVER" envDefault:"memory"`
	CacheCapacity int    `env:"CACHE_CAPACITY" envDefault:"256"`

	// SearchEnabled wires the OpenSearch indexer when true.
	SearchEnabled bool `env:"SEARCH_ENABLED" envDefault:"false"`

	// RateLimitRequests caps API requests per client IP within
	// RateLimitWindow. Zero disables limiting.
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"60"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// archiveConfig configures where original uploads are kept. The S3 fields are
// read here because file.S3Config carries no env tags of its own.
type archiveConfig struct {
	// Driver is "none", "local", or "s3".
	Driver string `env:"ARCHIVE_DRIVER" envDefault:"none"`

	Dir     string `env:"ARCHIVE_DIR" envDefault:"./data/uploads"`
	BaseURL string `env:"ARCHIVE_BASE_URL" envDefault:"/files"`

	S3Bucket         string `env:"ARCHIVE_S3_BUCKET"`
	S3Region         string `env:"ARCHIVE_S3_REGION"`
	S3AccessKeyID    string `env:"ARCHIVE_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"ARCHIVE_S3_SECRET_KEY"`
	S3Endpoint       string `env:"ARCHIVE_S3_ENDPOINT"`
	S3BaseURL        string `env:"ARCHIVE_S3_BASE_URL"`
	S3ForcePathStyle bool   `env:"ARCHIVE_S3_FORCE_PATH_STYLE" envDefault:"false"`
}
