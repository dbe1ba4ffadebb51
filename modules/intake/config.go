package intake

import "time"

// Config holds intake module settings.
type Config struct {
	MaxUploadSize int64         `env:"INTAKE_MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB
	CacheTTL      time.Duration `env:"INTAKE_CACHE_TTL" envDefault:"24h"`
	SearchIndex   string        `env:"INTAKE_SEARCH_INDEX" envDefault:"candidates"`
}

// StructurerConfig holds the LLM structuring settings.
type StructurerConfig struct {
	APIKey      string        `env:"OPENAI_API_KEY,required"`
	Model       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	Temperature float64       `env:"OPENAI_TEMPERATURE" envDefault:"0.3"`
	MaxTokens   int64         `env:"OPENAI_MAX_TOKENS" envDefault:"3000"`
	Timeout     time.Duration `env:"OPENAI_TIMEOUT" envDefault:"60s"`
}
