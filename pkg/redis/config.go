package redis

import "time"

// Config carries connection settings for the extraction cache.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // redis://:password@host:6379/0
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // Budget for the whole retry loop.

	RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`  // Connect attempts before Connect gives up.
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"` // Pause between connect attempts.
}
