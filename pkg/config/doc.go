// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct tag parsing and
// github.com/joho/godotenv for .env files. Nested structs can share a prefix
// with the `envPrefix` tag:
//
//	type Config struct {
//		TTL    int           `env:"TTL" envDefault:"43200"`
//		Cookie cookie.Config `envPrefix:""`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg, config.WithPrefix("SIMPLEPASS_"))
package config
