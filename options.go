package simplepass

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/simplepass/handler"
	"github.com/dmitrymomot/simplepass/pkg/cookie"
	"github.com/dmitrymomot/simplepass/pkg/secrets"
	"github.com/dmitrymomot/simplepass/views"
)

// Option configures a Pass.
type Option func(*Pass)

// WithPasskeyVerifier sets the check for the passkey pass type.
func WithPasskeyVerifier(v PasskeyVerifier) Option {
	return func(p *Pass) {
		p.passkeyVerifier = v
	}
}

// WithEmailPasswordVerifier sets the check for the email-password pass type.
func WithEmailPasswordVerifier(v EmailPasswordVerifier) Option {
	return func(p *Pass) {
		p.emailPasswordVerifier = v
	}
}

// WithLabels overrides user-visible text. Empty fields keep the labels file
// value, or the default.
func WithLabels(l views.Labels) Option {
	return func(p *Pass) {
		p.labels = l
	}
}

// WithTheme replaces the theme built from the config.
// A CSS value that is an absolute path is read from disk.
func WithTheme(t views.Theme) Option {
	return func(p *Pass) {
		p.theme = &t
	}
}

// WithLogger sets the logger for login, logout and session events.
// Nil keeps slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pass) {
		if log != nil {
			p.log = log
		}
	}
}

// WithClock sets the time source used for sealing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(p *Pass) {
		if now != nil {
			p.now = now
		}
	}
}

// WithTransport replaces the net/http cookie transport.
func WithTransport(t cookie.Transport) Option {
	return func(p *Pass) {
		if t != nil {
			p.transport = t
		}
	}
}

// WithErrorHandler replaces the error page handler.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(p *Pass) {
		p.errorHandler = h
	}
}

// WithSecrets uses reg instead of parsing Config.Secret.
func WithSecrets(reg *secrets.Registry) Option {
	return func(p *Pass) {
		p.registry = reg
	}
}
