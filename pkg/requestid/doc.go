// Package requestid tags every request with a correlation identifier.
//
// Middleware reuses a valid client-supplied X-Request-ID or generates a
// UUID, echoes it on the response, and stores it on the request context.
// LoggerExtractor plugs into logger.WithContextExtractors so each log
// record carries the id of the request that produced it.
package requestid
