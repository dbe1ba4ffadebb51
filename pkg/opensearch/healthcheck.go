package opensearch

import (
	"context"
	"errors"

	"github.com/opensearch-project/opensearch-go/v2"
)

// Healthcheck returns a health check function bound to the client, matching
// the func(context.Context) error shape the /health endpoint expects. It
// calls Info to verify the cluster is reachable.
func Healthcheck(client *opensearch.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if _, err := client.Info(client.Info.WithContext(ctx)); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
