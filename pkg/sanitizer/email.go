package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
)

// Trim removes leading and trailing white space.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Fold returns the Unicode case-folded form of s, for case-insensitive
// comparison. It is not meant for display.
func Fold(s string) string {
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Fold().String(s)
}

// NormalizeEmail trims and case-folds an email address so that
// " Admin@Example.COM" and "admin@example.com" compare equal.
// The address is not otherwise validated or rewritten.
var NormalizeEmail = Compose(Trim, Fold)

// MaskEmail hides all but the first character of the local part:
// "admin@example.com" becomes "a****@example.com". Values without exactly
// one "@" are masked entirely.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") || local == "" {
		return strings.Repeat("*", len([]rune(email)))
	}

	runes := []rune(local)
	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}
