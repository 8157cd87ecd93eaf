package simplepass

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/simplepass/handler"
	"github.com/dmitrymomot/simplepass/pkg/cookie"
	"github.com/dmitrymomot/simplepass/pkg/logger"
	"github.com/dmitrymomot/simplepass/pkg/requestid"
	"github.com/dmitrymomot/simplepass/pkg/secrets"
	"github.com/dmitrymomot/simplepass/views"
)

// Pass is the authentication guard. It is immutable after New and safe for
// concurrent use.
type Pass struct {
	passType   PassType
	root       string
	logoutPath string
	ttl        int
	cookieName string
	cookieBase cookie.Options
	flashOpts  cookie.Options
	registry   *secrets.Registry

	passkeyVerifier       PasskeyVerifier
	emailPasswordVerifier EmailPasswordVerifier

	labels       views.Labels
	theme        *views.Theme
	log          *slog.Logger
	now          func() time.Time
	transport    cookie.Transport
	errorHandler handler.ErrorHandler[handler.Context]
}

// New validates cfg and builds a Pass. Any error is a configuration error
// and should stop the application.
func New(cfg Config, opts ...Option) (*Pass, error) {
	p := &Pass{
		log:       slog.Default(),
		now:       time.Now,
		transport: cookie.NewTransport(),
	}
	for _, opt := range opts {
		opt(p)
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	p.passType = cfg.Type
	p.root = NormalizeRootPath(cfg.RootPath)
	p.logoutPath = joinPath(p.root, "_logout")
	p.ttl = cfg.TTL
	p.cookieName = cfg.CookieName
	baseLog := p.log
	p.log = p.log.With(logger.Component("simplepass"), logger.PassType(string(p.passType)))

	if p.registry == nil {
		reg, err := secrets.Parse(cfg.Secret)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		p.registry = reg
	}

	base, err := cfg.Cookie.Options()
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	p.cookieBase = base
	p.flashOpts = cookie.Options{
		Path:     "/",
		Domain:   base.Domain,
		MaxAge:   flashMaxAge,
		Secure:   base.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if err := p.setupVerifier(cfg); err != nil {
		return nil, err
	}
	if err := p.setupViews(cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	if p.errorHandler == nil {
		p.errorHandler = handler.NewErrorHandler(baseLog, handler.ErrorHandlerConfig{
			ErrorPage:   views.ErrorPage(*p.theme, p.labels),
			Message:     p.message,
			ErrorTarget: "#" + views.ContainerID,
		})
	}

	return p, nil
}

func (p *Pass) setupVerifier(cfg Config) error {
	switch p.passType {
	case PassTypePasskey:
		if p.emailPasswordVerifier != nil {
			return fmt.Errorf("%w: email-password verifier given for pass type %q", ErrInvalidPassType, p.passType)
		}
		if p.passkeyVerifier == nil && cfg.PasskeyHash != "" {
			v, err := PasskeyHash(cfg.PasskeyHash)
			if err != nil {
				return errors.Join(ErrInvalidConfig, err)
			}
			p.passkeyVerifier = v
		}
		if p.passkeyVerifier == nil {
			return fmt.Errorf("%w: pass type %q", ErrVerifierRequired, p.passType)
		}
	case PassTypeEmailPassword:
		if p.passkeyVerifier != nil {
			return fmt.Errorf("%w: passkey verifier given for pass type %q", ErrInvalidPassType, p.passType)
		}
		if p.emailPasswordVerifier == nil && cfg.CredentialsFile != "" {
			hashes, err := LoadCredentials(cfg.CredentialsFile)
			if err != nil {
				return err
			}
			v, err := CredentialHashes(hashes)
			if err != nil {
				return err
			}
			p.emailPasswordVerifier = v
		}
		if p.emailPasswordVerifier == nil {
			return fmt.Errorf("%w: pass type %q", ErrVerifierRequired, p.passType)
		}
	}
	return nil
}

func (p *Pass) setupViews(cfg Config) error {
	emailPassword := p.passType == PassTypeEmailPassword

	fileLabels := views.Labels{}
	if cfg.LabelsFile != "" {
		l, err := views.LoadLabels(cfg.LabelsFile)
		if err != nil {
			return err
		}
		fileLabels = l
	}
	p.labels = p.labels.Merge(fileLabels.Merge(views.DefaultLabels(emailPassword)))

	theme := views.Theme{
		Title:      cfg.ThemeTitle,
		CSS:        cfg.ThemeCSS,
		FontURL:    cfg.ThemeFontURL,
		FontFamily: cfg.ThemeFontFamily,
	}
	if p.theme != nil {
		theme = *p.theme
	}
	css, err := views.LoadCSS(theme.CSS)
	if err != nil {
		return err
	}
	theme.CSS = css
	p.theme = &theme
	return nil
}

// RootPath returns the normalized login page path.
func (p *Pass) RootPath() string {
	return p.root
}

// LogoutPath returns the path logout requests are posted to.
func (p *Pass) LogoutPath() string {
	return p.logoutPath
}

// Passed reports whether r carries a valid session cookie.
// An error means the cookie could not be verified and is not the same as false.
func (p *Pass) Passed(r *http.Request) (bool, error) {
	value, ok := p.transport.Read(r, p.cookieName)
	if !ok {
		return false, nil
	}

	state, status, err := classify(value, p.registry, p.ttlDuration(), p.now())
	if err != nil {
		p.log.ErrorContext(r.Context(), "session verification failed",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Event("classify"),
		)
		return false, err
	}
	if state != Authenticated {
		p.log.DebugContext(r.Context(), "session cookie rejected",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.TokenStatus(status.String()),
			logger.Event("classify"),
		)
	}
	return state == Authenticated, nil
}

// Guard lets authenticated requests through to next. Others are redirected
// to the login page, which sends them back to the requested URL after login.
func (p *Pass) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		passed, err := p.Passed(r)
		if err != nil {
			p.errorHandler(handler.NewContext(w, r), err)
			return
		}
		if passed {
			next.ServeHTTP(w, r)
			return
		}

		target := withRedirect(p.root, r.URL.RequestURI())
		if err := handler.Redirect(target).Render(w, r); err != nil {
			p.errorHandler(handler.NewContext(w, r), err)
		}
	})
}

// Register adds the login, login form and logout routes to r.
//
//	r := chi.NewRouter()
//	pass.Register(r)
//	r.With(pass.Guard).Get("/", home)
func (p *Pass) Register(r chi.Router) {
	r.Get(p.root, p.viewHandler())
	r.Post(p.root, p.loginHandler())
	r.Post(p.logoutPath, p.logoutHandler())
}

// Router returns a router serving only the routes added by Register.
func (p *Pass) Router() chi.Router {
	r := chi.NewRouter()
	p.Register(r)
	return r
}

func (p *Pass) ttlDuration() time.Duration {
	return time.Duration(p.ttl) * time.Second
}

// message maps an error key to its label. Keys without a label are turned
// into a sentence: "method_not_allowed" becomes "Method not allowed".
func (p *Pass) message(key string) string {
	if m := p.labels.Message(key); m != "" {
		return m
	}
	s := strings.ReplaceAll(key, "_", " ")
	if s == "" {
		return p.labels.InternalError
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
