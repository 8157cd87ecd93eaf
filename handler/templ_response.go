package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

type templResponse struct {
	component templ.Component
	status    int
	options   []TemplOption
}

// Render patches the component over SSE for DataStar requests and writes
// HTML for regular ones. The page is rendered to a buffer first, so a failed
// render leaves the response untouched.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}

	var buf bytes.Buffer
	if err := t.component.Render(r.Context(), &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := buf.WriteTo(w)
	return err
}

// Templ renders a templ component with status 200.
//
//	return handler.Templ(views.Login(params))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return TemplStatus(http.StatusOK, component, opts...)
}

// TemplStatus renders a templ component with the given status code.
// The status is ignored for DataStar requests, which always stream with 200.
//
//	return handler.TemplStatus(http.StatusUnauthorized, views.Login(params))
func TemplStatus(status int, component templ.Component, opts ...TemplOption) Response {
	return templResponse{
		component: component,
		status:    status,
		options:   opts,
	}
}
