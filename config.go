package simplepass

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/simplepass/pkg/cookie"
	"github.com/dmitrymomot/simplepass/pkg/validator"
)

// PassType selects the credential the login form asks for.
type PassType string

const (
	PassTypePasskey       PassType = "passkey"
	PassTypeEmailPassword PassType = "email-password"
)

const (
	DefaultCookieName = "simplepass"
	DefaultTTL        = 43200    // 12h in seconds
	MaxTTL            = 34560000 // 400 days, the browser Max-Age cap
	DefaultRootPath   = "/simplepass"

	// FlashCookieName carries the one-shot "logged out" notice.
	FlashCookieName = "simplepass.flash"

	flashLoggedOut = "unpassed"
	flashMaxAge    = 10
)

// Config is the startup configuration. Load it with config.Load and the
// SIMPLEPASS_ prefix, or fill it in code. Zero values take the defaults,
// except Secret and Cookie.Secure which have none.
type Config struct {
	Type       PassType `env:"TYPE" envDefault:"passkey"`
	RootPath   string   `env:"ROOT_PATH" envDefault:"/simplepass"`
	TTL        int      `env:"TTL" envDefault:"43200"` // seconds
	CookieName string   `env:"COOKIE_NAME" envDefault:"simplepass"`

	// Secret is "secret" or "1:old-secret,2:new-secret". Every secret must be
	// at least 32 characters long.
	Secret string `env:"SECRET,required"`

	Cookie cookie.Config

	// PasskeyHash is an argon2id PHC string checked when no passkey verifier
	// is given to New.
	PasskeyHash string `env:"PASSKEY_HASH"`
	// CredentialsFile is a YAML map of email to argon2id PHC string, used when
	// no email-password verifier is given to New.
	CredentialsFile string `env:"CREDENTIALS_FILE"`

	LabelsFile string `env:"LABELS_FILE"`

	ThemeTitle      string `env:"THEME_TITLE"`
	ThemeCSS        string `env:"THEME_CSS"` // inline CSS or an absolute file path
	ThemeFontURL    string `env:"THEME_FONT_URL"`
	ThemeFontFamily string `env:"THEME_FONT_FAMILY"`
}

func (c Config) withDefaults() Config {
	if c.Type == "" {
		c.Type = PassTypePasskey
	}
	if c.RootPath == "" {
		c.RootPath = DefaultRootPath
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	if c.CookieName == "" {
		c.CookieName = DefaultCookieName
	}
	return c
}

// Validate checks the values that have no safe fallback.
func (c Config) Validate() error {
	return validator.Apply(
		validator.OneOf("type", c.Type, []PassType{PassTypePasskey, PassTypeEmailPassword}),
		validator.MinNum("ttl", c.TTL, 1),
		validator.MaxNum("ttl", c.TTL, MaxTTL),
		validator.HasPrefix("root_path", strings.TrimSpace(c.RootPath), "/"),
		validator.Custom("cookie_name", validCookieName(c.CookieName), "validation.cookie_name", "must be a valid cookie name"),
		validator.Custom("cookie_name", c.CookieName != FlashCookieName, "validation.cookie_name", "is reserved"),
	)
}

// validCookieName reports whether net/http would send a cookie named name.
func validCookieName(name string) bool {
	return name != "" && (&http.Cookie{Name: name, Value: "x"}).Valid() == nil
}
