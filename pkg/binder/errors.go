package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder.unsupported_media_type")
	ErrFailedToParseForm    = errors.New("binder.failed_to_parse_form")
	ErrFailedToParseQuery   = errors.New("binder.failed_to_parse_query")
	ErrInvalidTarget        = errors.New("binder.invalid_target")

	// ErrNotApplicable is returned when the request carries nothing the binder
	// understands. Callers skip such binders instead of failing the request.
	ErrNotApplicable = errors.New("binder.not_applicable")
)
