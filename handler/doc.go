// Package handler provides typed HTTP handlers with pluggable binding and
// rendering.
//
// A HandlerFunc receives a Context and a request struct filled by binders,
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type LoginRequest struct {
//		Passkey string `form:"passkey"`
//	}
//
//	func login(ctx handler.Context, req LoginRequest) handler.Response {
//		if req.Passkey == "" {
//			return handler.TemplStatus(http.StatusUnauthorized, page)
//		}
//		return handler.Redirect("/")
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinders[handler.Context, LoginRequest](binder.Form()),
//		handler.WithErrorHandler[handler.Context, LoginRequest](errHandler),
//	))
//
// # Responses
//
// Templ and TemplStatus render templ components. Redirect issues a
// 303 See Other. Both switch to Server-Sent Events when the request comes
// from DataStar (see IsDataStar): components are patched into the page and
// redirects navigate the browser from a script.
//
// # Errors
//
// Binding and rendering errors go to the ErrorHandler. HTTPError carries a
// status code and a message key; any other error becomes a 500 whose text is
// only logged. NewErrorHandler builds the default handler which logs through
// slog with the request ID and renders an error page component.
package handler
