// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import "github.com/crossfn/crossfn/core/config"
//
//	type HostConfig struct {
//		Port     string `env:"FUNCTIONS_CUSTOMHANDLER_PORT" envDefault:"8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	func main() {
//		var cfg HostConfig
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// Each configuration type is loaded only once per application lifetime;
// different types are cached independently.
package config
