package handler

import "net/http"

type redirectResponse struct {
	url  string
	code int
}

// Render redirects regular requests with a Location header and DataStar
// requests with an SSE script that navigates the browser.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other).
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode creates a redirect response with a specific status code.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}
