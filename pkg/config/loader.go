package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultDotenv sync.Once

// Option configures Load.
type Option func(*options)

type options struct {
	prefix      string
	environment map[string]string
	dotenv      []string
}

// WithPrefix prepends prefix to every env tag of the loaded struct,
// e.g. WithPrefix("SIMPLEPASS_") reads SIMPLEPASS_TTL for `env:"TTL"`.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvironment parses values from m instead of the process environment.
// No .env file is read in this mode.
func WithEnvironment(m map[string]string) Option {
	return func(o *options) { o.environment = m }
}

// WithDotenv loads the given .env files into the process environment before
// parsing. Variables already set are not overridden. Missing files are an error.
func WithDotenv(files ...string) Option {
	return func(o *options) { o.dotenv = append(o.dotenv, files...) }
}

// Load parses environment variables into v using `env` and `envDefault`
// struct tags.
//
// Unless WithEnvironment is used, the default ./.env file is read once per
// process if it exists.
//
//	type Config struct {
//		Addr   string `env:"ADDR" envDefault:":8080"`
//		Secret string `env:"SECRET,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("APP_")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.environment == nil {
		defaultDotenv.Do(func() {
			// A missing default .env is not an error.
			_ = godotenv.Load()
		})
		if len(o.dotenv) > 0 {
			if err := godotenv.Load(o.dotenv...); err != nil {
				return errors.Join(ErrLoadingDotenv, err)
			}
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
