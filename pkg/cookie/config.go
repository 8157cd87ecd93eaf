package cookie

// Config holds cookie attributes loaded from the environment.
// Secure has no default: it must be set explicitly for every deployment.
type Config struct {
	Path     string `env:"COOKIE_PATH" envDefault:""`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool   `env:"COOKIE_SECURE,required"`
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:""` // lax, strict, none
}

// Options converts the config into base cookie options.
// Unset path and SameSite stay zero so BuildOptions can apply its defaults.
func (c Config) Options(opts ...Option) (Options, error) {
	sameSite, err := ParseSameSite(c.SameSite)
	if err != nil {
		return Options{}, err
	}

	base := Options{
		Path:     c.Path,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: sameSite,
	}
	base = Apply(base, opts...)

	if err := base.Validate(); err != nil {
		return Options{}, err
	}
	return base, nil
}
