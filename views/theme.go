package views

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrThemeFile = errors.New("views.invalid_theme_file")

// Theme customizes the look of the login page.
type Theme struct {
	// Title is the document title. Empty uses the title label.
	Title string
	// CSS is injected into a style element as is.
	CSS string
	// FontURL is a stylesheet URL, e.g. a Google Fonts link.
	FontURL string
	// FontFamily is applied to the page body.
	FontFamily string
}

// LoadCSS returns css unchanged, unless it is an absolute path, in which
// case the file content is returned.
func LoadCSS(css string) (string, error) {
	if !filepath.IsAbs(css) {
		return css, nil
	}
	data, err := os.ReadFile(css)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrThemeFile, err)
	}
	return string(data), nil
}

// fontFamily strips characters that could end the CSS declaration.
func fontFamily(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '<', '>', ';', '{', '}':
			return -1
		}
		return r
	}, s)
}

// styleText keeps injected CSS inside its style element.
func styleText(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

func pageTitle(theme Theme, fallback string) string {
	if theme.Title != "" {
		return theme.Title
	}
	return fallback
}

// pageCSS is the content of the page style element.
func pageCSS(theme Theme) string {
	var b strings.Builder
	b.WriteString(baseCSS)
	if family := fontFamily(theme.FontFamily); family != "" {
		b.WriteString(`body{font-family:"` + family + `",sans-serif}`)
	}
	b.WriteString(styleText(theme.CSS))
	return b.String()
}

const baseCSS = `*{box-sizing:border-box}` +
	`body{margin:0;min-height:100vh;display:flex;align-items:center;justify-content:center;font-family:system-ui,sans-serif;background:#f5f5f5;color:#222}` +
	`main{width:100%;max-width:22rem;padding:2rem;background:#fff;border-radius:.5rem;box-shadow:0 1px 3px rgba(0,0,0,.1)}` +
	`h1{margin:0 0 1rem;font-size:1.25rem}` +
	`form{display:flex;flex-direction:column;gap:.75rem}` +
	`input,button{font:inherit;padding:.6rem .75rem;border-radius:.375rem;border:1px solid #ccc}` +
	`button{cursor:pointer;background:#222;color:#fff;border-color:#222}` +
	`.error{color:#b00020}.notice{color:#0a6b2f}`
