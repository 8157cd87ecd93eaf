// Package requestid tags every request with a correlation ID.
//
// The middleware reuses a well-formed X-Request-ID header or generates a
// UUIDv4, stores it in the request context and echoes it back in the
// response. LoggerExtractor plugs the ID into logger.New so every record
// logged with the request context carries it.
package requestid
