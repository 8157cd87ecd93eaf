// Command simplepass runs a demo server with one public and one guarded page.
//
//	SIMPLEPASS_SECRET=... SIMPLEPASS_COOKIE_SECURE=false go run ./cmd/simplepass
//
// Without SIMPLEPASS_PASSKEY_HASH the pass key is "kamal". Print a hash for
// your own pass key with:
//
//	go run ./cmd/simplepass hash 'my pass key'
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/simplepass"
	"github.com/dmitrymomot/simplepass/pkg/clientip"
	"github.com/dmitrymomot/simplepass/pkg/config"
	"github.com/dmitrymomot/simplepass/pkg/environment"
	"github.com/dmitrymomot/simplepass/pkg/httpserver"
	"github.com/dmitrymomot/simplepass/pkg/logger"
	"github.com/dmitrymomot/simplepass/pkg/passhash"
	"github.com/dmitrymomot/simplepass/pkg/requestid"
)

const demoPasskey = "kamal"

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
	// LogLevel overrides the environment default: debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL"`
	// TrustedIPHeaders lists proxy headers carrying the client IP,
	// e.g. "CF-Connecting-IP,X-Forwarded-For". Empty trusts none.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`

	Pass simplepass.Config `envPrefix:"SIMPLEPASS_"`
	HTTP httpserver.Config
}

func main() {
	if len(os.Args) == 3 && os.Args[1] == "hash" {
		encoded, err := passhash.Hash(os.Args[2], passhash.DefaultParams)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(encoded)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.Env)
	logOpts := []logger.Option{
		logger.WithEnvironment(env, "simplepass"),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	opts := []simplepass.Option{simplepass.WithLogger(log)}
	if cfg.Pass.Type != simplepass.PassTypeEmailPassword && cfg.Pass.PasskeyHash == "" {
		if env.IsProduction() {
			return errors.New("SIMPLEPASS_PASSKEY_HASH is required in production")
		}
		log.Warn("using the demo pass key", logger.Event("demo_passkey"))
		opts = append(opts, simplepass.WithPasskeyVerifier(simplepass.PasskeyEquals(demoPasskey)))
	}

	pass, err := simplepass.New(cfg.Pass, opts...)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(cfg.TrustedIPHeaders...),
		environment.Middleware(env),
	)
	r.Get("/health", httpserver.HealthCheckHandler())
	pass.Register(r)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("/"))
	})
	r.With(pass.Guard).Get("/passed", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("passed"))
	})

	log.Info("starting server",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("login", pass.RootPath()),
	)
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}
