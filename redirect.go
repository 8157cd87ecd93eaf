package simplepass

import (
	"net/url"
	"strings"
)

// SafeRedirect returns raw when it is a local absolute path, otherwise fallback.
//
// Local means it starts with a single "/". "//host" and "/\host" are
// rejected because browsers treat both as links to another host.
func SafeRedirect(raw, fallback string) string {
	if !strings.HasPrefix(raw, "/") {
		return fallback
	}
	if len(raw) > 1 && (raw[1] == '/' || raw[1] == '\\') {
		return fallback
	}
	return raw
}

// safeRedirectQuery applies SafeRedirect to a query parameter. Absent and
// repeated parameters are not a single string and get the fallback.
func safeRedirectQuery(values []string, fallback string) string {
	if len(values) != 1 {
		return fallback
	}
	return SafeRedirect(values[0], fallback)
}

// NormalizeRootPath trims spaces, adds a leading "/" and drops trailing
// slashes, except for "/" itself.
func NormalizeRootPath(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if trimmed := strings.TrimRight(p, "/"); trimmed != "" {
		return trimmed
	}
	return "/"
}

// withRedirect appends the redirect query parameter to path when target is set.
func withRedirect(path, target string) string {
	if target == "" {
		return path
	}
	return path + "?redirect=" + url.QueryEscape(target)
}

func joinPath(root, sub string) string {
	if root == "/" {
		return "/" + sub
	}
	return root + "/" + sub
}
