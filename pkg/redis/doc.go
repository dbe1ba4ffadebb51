// Package redis dials a Redis server from env-tagged configuration with
// startup retries, plus a ping-based healthcheck for the /health endpoint.
//
// The extraction cache uses it to remember raw payloads for documents that
// were already processed, keyed by content hash.
package redis
