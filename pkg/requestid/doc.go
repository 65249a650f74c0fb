// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware accepts a client supplied X-Request-ID when it is short and made
// of [a-zA-Z0-9_-], and generates a UUID otherwise. LoggerExtractor plugs the
// id into pkg/logger so every record logged with the request context carries
// it.
package requestid
