package mongo

import "errors"

var (
	// ErrNotReady is returned once the retry loop in New exhausts its
	// attempts without a successful ping.
	ErrNotReady = errors.New("mongo not ready after connect retries")

	// ErrHealthcheckFailed wraps ping failures from the Healthcheck probe.
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)
