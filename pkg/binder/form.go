package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms.
const DefaultMaxMemory = 1 << 20

// Form binds body fields tagged `form:"name"`.
//
// Only the request body is read: query parameters never leak into form fields.
// Requests without a body content type return ErrNotApplicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrNotApplicable
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		var values map[string][]string
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = map[string][]string{}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
