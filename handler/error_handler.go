package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/simplepass/pkg/logger"
	"github.com/dmitrymomot/simplepass/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
}

// ErrorHandlerConfig configures the default error handler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the error page. When nil, plain text is written.
	ErrorPage func(ErrorPageParams) templ.Component

	// Message maps an error key to user-facing text. When nil, the key is shown.
	Message func(key string) string

	// ErrorTarget is the selector patched for DataStar requests (default: "#error").
	ErrorTarget string
}

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Key        string
	LogLevel   slog.Level
}

// ClassifyError maps err to a status code, a message key and a log level.
// Errors that are not HTTPError are internal server errors, their text is
// never exposed.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Key:        ErrInternalServerError.Key,
		LogLevel:   slog.LevelError,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
	}

	if info.StatusCode >= http.StatusBadRequest && info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler creates the default error handler.
// It logs every error with the request ID and renders the error page, or
// patches it into the page for DataStar requests.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ErrorTarget == "" {
		cfg.ErrorTarget = "#error"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		requestID := requestid.FromContext(r.Context())
		info := ClassifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestID),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		message := info.Key
		if cfg.Message != nil {
			message = cfg.Message(info.Key)
		}

		if cfg.ErrorPage == nil {
			http.Error(w, message, info.StatusCode)
			return
		}

		page := cfg.ErrorPage(ErrorPageParams{
			Error:      message,
			StatusCode: info.StatusCode,
			RequestID:  requestID,
		})

		if renderErr := TemplStatus(info.StatusCode, page, WithTarget(cfg.ErrorTarget)).Render(w, r); renderErr != nil {
			log.Error("failed to render error page",
				logger.RequestID(requestID),
				logger.Error(renderErr),
				logger.Event("render_error_page"),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
