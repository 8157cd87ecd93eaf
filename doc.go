// Package simplepass puts HTTP routes behind a single shared credential:
// a pass key, or an email and password checked by a caller-supplied
// function.
//
// A successful login is stored in an encrypted, authenticated cookie. There
// is no server-side session: the cookie is verified on every request against
// the configured secrets, and expires after the configured TTL.
//
//	var cfg simplepass.Config
//	config.MustLoad(&cfg, config.WithPrefix("SIMPLEPASS_"))
//
//	pass, err := simplepass.New(cfg,
//		simplepass.WithPasskeyVerifier(simplepass.PasskeyEquals(os.Getenv("PASSKEY"))),
//		simplepass.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	r := chi.NewRouter()
//	pass.Register(r)
//	r.With(pass.Guard).Get("/dashboard", dashboard)
//
// Register adds three routes under the root path (default /simplepass):
// GET shows the login page, POST logs in and POST <root>/_logout logs out.
// Guard redirects unauthenticated requests to the login page, remembering
// the requested URL so the visitor returns there after logging in.
//
// Secrets can be rotated without logging anyone out: configure
// "1:old-secret,2:new-secret". New sessions are sealed with the highest ID,
// existing ones keep working until they expire.
package simplepass
