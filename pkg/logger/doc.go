// Package logger builds slog loggers with environment presets, context
// extractors and shared attribute helpers.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Parse(cfg.Env), "simplepass"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.WarnContext(r.Context(), "login failed",
//		logger.PassType("passkey"),
//		logger.Component("simplepass"),
//	)
//
// Extractors run on every record, so request-scoped values such as the
// request ID are picked from the context passed to the *Context logging
// methods.
package logger
