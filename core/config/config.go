package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache stores loaded configurations keyed by their struct type.
	cache sync.Map

	// loadEnvOnce ensures .env files are loaded only once per process.
	loadEnvOnce sync.Once
)

// Load parses environment variables into cfg. Each configuration type
// is loaded once per process; later calls for the same type return the
// cached value. A .env file in the working directory is applied to the
// environment on first use, without overriding variables already set.
func Load[T any](cfg *T) error {
	loadEnvOnce.Do(func() {
		// Missing .env files are expected in most deployments.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", key, err)
	}

	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
