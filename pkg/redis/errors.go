package redis

import "errors"

var (
	// ErrInvalidConnectionURL wraps redis.ParseURL failures.
	ErrInvalidConnectionURL = errors.New("invalid redis connection URL")

	// ErrNotReady is returned when the server does not answer PING within
	// the connect timeout.
	ErrNotReady = errors.New("redis not ready within connect timeout")

	// ErrHealthcheckFailed wraps ping failures from the Healthcheck probe.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
