// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: .env
// files feed the process environment, env tags map variables onto struct
// fields, and each configuration type is parsed at most once per process with
// the result cached for later callers.
//
// # Usage
//
//	type StorageConfig struct {
//	    Driver string `env:"STORAGE_DRIVER" envDefault:"mongo"`
//	    URI    string `env:"STORAGE_URI,required"`
//	}
//
//	var cfg StorageConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// LoadEnv reads additional .env files before parsing, and ResetCache clears
// the per-type cache, which matters in tests that change the environment
// between loads.
//
// # Error Handling
//
// Sentinel errors wrap the underlying cause and can be compared with
// errors.Is: ErrLoadingEnv, ErrParsingConfig, ErrNilPointer.
package config
