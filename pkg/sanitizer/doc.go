// Package sanitizer normalizes user input before it is compared or logged.
//
// Helpers are plain func(string) string values, so they chain with Compose:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.Fold)
//	clean(" Admin@Example.COM ") // "admin@example.com"
package sanitizer
