// Package ratelimit throttles HTTP clients with a sliding window limiter.
//
// The middleware keys each request with a KeyFunc, asks the Limiter for a
// verdict, and answers 429 with a Retry-After header once the window is
// full. Store failures fail open so a broken backend cannot take the API
// down with it.
package ratelimit
