package simplepass

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/simplepass/handler"
	"github.com/dmitrymomot/simplepass/pkg/binder"
	"github.com/dmitrymomot/simplepass/pkg/clientip"
	"github.com/dmitrymomot/simplepass/pkg/cookie"
	"github.com/dmitrymomot/simplepass/pkg/logger"
	"github.com/dmitrymomot/simplepass/pkg/requestid"
	"github.com/dmitrymomot/simplepass/pkg/sanitizer"
	"github.com/dmitrymomot/simplepass/pkg/token"
	"github.com/dmitrymomot/simplepass/pkg/validator"
	"github.com/dmitrymomot/simplepass/views"
)

// defaultRedirect is the target after login when no safe redirect was given.
const defaultRedirect = "/"

type viewRequest struct {
	// A slice, so a repeated parameter can be told apart from a single one.
	Redirect []string `query:"redirect"`
}

type loginRequest struct {
	Redirect []string `query:"redirect"`
	Passkey  string   `form:"passkey"`
	Email    string   `form:"email"`
	Password string   `form:"password"`
}

type logoutRequest struct{}

func (p *Pass) viewHandler() http.HandlerFunc {
	return handler.Wrap(p.view,
		handler.WithBinders[handler.Context, viewRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, viewRequest](p.errorHandler),
	)
}

func (p *Pass) loginHandler() http.HandlerFunc {
	return handler.Wrap(p.login,
		handler.WithBinders[handler.Context, loginRequest](binder.Query(), binder.Form()),
		handler.WithErrorHandler[handler.Context, loginRequest](p.errorHandler),
	)
}

func (p *Pass) logoutHandler() http.HandlerFunc {
	return handler.Wrap(p.logout,
		handler.WithErrorHandler[handler.Context, logoutRequest](p.errorHandler),
	)
}

func (p *Pass) view(ctx handler.Context, req viewRequest) handler.Response {
	r := ctx.Request()

	flash, ok := cookie.Pop(p.transport, ctx.ResponseWriter(), r, FlashCookieName, p.flashOpts)
	passed, err := p.Passed(r)
	if err != nil {
		return handler.Error(err)
	}

	page := p.page(safeRedirectQuery(req.Redirect, ""))
	page.LoggedOut = ok && flash == flashLoggedOut
	page.Authenticated = passed
	return handler.Templ(views.Login(page), handler.WithTarget("#"+views.ContainerID))
}

func (p *Pass) login(ctx handler.Context, req loginRequest) handler.Response {
	r := ctx.Request()
	redirect := safeRedirectQuery(req.Redirect, "")

	if err := p.attempt(ctx, req); err != nil {
		var httpErr handler.HTTPError
		if errors.Is(err, ErrVerifyFailed) || !errors.As(err, &httpErr) {
			return handler.Error(err)
		}

		attrs := []any{
			logger.RequestID(requestid.FromContext(ctx)),
			logger.RemoteAddr(clientip.Get(r)),
			logger.Error(err),
			logger.Event("login"),
		}
		if p.passType == PassTypeEmailPassword && req.Email != "" {
			attrs = append(attrs, slog.String("email", sanitizer.MaskEmail(req.Email)))
		}
		p.log.WarnContext(ctx, "login failed", attrs...)

		page := p.page(redirect)
		page.Error = p.message(httpErr.Key)
		if p.passType == PassTypeEmailPassword {
			page.Email = req.Email
		}
		return handler.TemplStatus(httpErr.Code, views.Login(page), handler.WithTarget("#"+views.ContainerID))
	}

	sealed, err := token.Seal(p.registry, p.ttlDuration(), p.now())
	if err != nil {
		return handler.Error(err)
	}
	p.transport.Write(ctx.ResponseWriter(), p.cookieName, sealed, cookie.BuildOptions(p.cookieBase, p.ttl))

	p.log.InfoContext(ctx, "login succeeded",
		logger.RequestID(requestid.FromContext(ctx)),
		logger.RemoteAddr(clientip.Get(r)),
		logger.Event("login"),
	)

	if redirect == "" {
		redirect = defaultRedirect
	}
	return handler.Redirect(redirect)
}

// attempt runs the login checks in order: session state, required fields,
// then the verifier. Failures the visitor can fix are handler.HTTPError.
func (p *Pass) attempt(ctx handler.Context, req loginRequest) error {
	passed, err := p.Passed(ctx.Request())
	if err != nil {
		return err
	}
	if passed {
		return ErrAlreadyAuthenticated
	}

	switch p.passType {
	case PassTypeEmailPassword:
		if err := validator.Apply(
			validator.RequiredString("email", req.Email),
			validator.NotEmpty("password", req.Password),
		); err != nil {
			return ErrCredentialsRequired
		}
		ok, err := p.emailPasswordVerifier(ctx, req.Email, req.Password)
		if err != nil {
			return verifyError(err)
		}
		if !ok {
			return ErrInvalidCredentials
		}

	default:
		if err := validator.Apply(validator.RequiredString("passkey", req.Passkey)); err != nil {
			return ErrPasskeyRequired
		}
		ok, err := p.passkeyVerifier(ctx, req.Passkey)
		if err != nil {
			return verifyError(err)
		}
		if !ok {
			return ErrIncorrectPasskey
		}
	}
	return nil
}

func (p *Pass) logout(ctx handler.Context, _ logoutRequest) handler.Response {
	r := ctx.Request()
	w := ctx.ResponseWriter()

	passed, err := p.Passed(r)
	if err != nil {
		return handler.Error(err)
	}
	if !passed {
		p.log.WarnContext(ctx, "logout without session",
			logger.RequestID(requestid.FromContext(ctx)),
			logger.Event("logout"),
		)
		page := p.page("")
		page.Error = p.message(ErrUnauthorized.Key)
		return handler.TemplStatus(ErrUnauthorized.Code, views.Login(page), handler.WithTarget("#"+views.ContainerID))
	}

	p.transport.Clear(w, p.cookieName, cookie.BuildOptions(p.cookieBase, 0))
	p.transport.Write(w, FlashCookieName, flashLoggedOut, p.flashOpts)

	p.log.InfoContext(ctx, "logged out",
		logger.RequestID(requestid.FromContext(ctx)),
		logger.Event("logout"),
	)
	return handler.Redirect(p.root)
}

// page returns the login page data shared by every route. redirect must
// already be sanitized.
func (p *Pass) page(redirect string) views.LoginPage {
	return views.LoginPage{
		Labels:        p.labels,
		Theme:         *p.theme,
		Action:        withRedirect(p.root, redirect),
		LogoutAction:  p.logoutPath,
		EmailPassword: p.passType == PassTypeEmailPassword,
	}
}
