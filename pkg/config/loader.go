package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cacheMu guards cached. Parsed configs are stored by type so every
	// caller of Load sees the same copy regardless of later environment
	// changes.
	cacheMu sync.RWMutex
	cached  = make(map[string]any)

	defaultEnvOnce sync.Once
)

// LoadEnv loads one or more .env files into the process environment before
// parsing. Existing environment variables are never overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv for files the process cannot run without.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic("config: " + err.Error())
	}
}

// Load parses environment variables into the provided configuration struct.
//
// The default .env file is loaded once per process if present, then fields
// are populated from `env` tags. Each configuration type is parsed at most
// once; subsequent calls for the same type return the cached copy even if
// the environment changed in between.
//
// Example:
//
//	type StorageConfig struct {
//		Driver string `env:"STORAGE_DRIVER" envDefault:"mongo"`
//		URI    string `env:"STORAGE_URI,required"`
//	}
//
//	var cfg StorageConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]().String()

	cacheMu.RLock()
	hit, ok := cached[key]
	cacheMu.RUnlock()
	if ok {
		*v = hit.(T)
		return nil
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if hit, ok := cached[key]; ok {
		*v = hit.(T)
		return nil
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cached[key] = *v
	return nil
}

// MustLoad is Load for configuration the process cannot run without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic("config: " + err.Error())
	}
}

// ResetCache discards every cached configuration so the next Load parses the
// environment again. Intended for tests.
func ResetCache() {
	cacheMu.Lock()
	cached = make(map[string]any)
	cacheMu.Unlock()
}
