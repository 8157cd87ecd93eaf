// Package binder fills typed request structs from URL-encoded data.
//
// Two binders are provided: Form reads the request body of
// application/x-www-form-urlencoded and multipart/form-data requests, Query
// reads the URL query string. Fields are matched by struct tag:
//
//	type LoginRequest struct {
//		Passkey  string   `form:"passkey"`
//		Redirect []string `query:"redirect"`
//		Internal string   `form:"-"`
//	}
//
// Untagged fields are ignored. A string field takes the first submitted
// value, a []string field takes every value in submission order, so callers
// can tell a single value from a repeated parameter.
//
// Both binders have the signature func(*http.Request, any) error and plug
// into handler.Wrap via handler.WithBinders.
package binder
