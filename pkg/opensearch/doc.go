// Package opensearch creates configured OpenSearch clients for the candidate
// search index.
//
// New builds a client from env-tagged Config and verifies connectivity before
// returning it; Healthcheck exposes the same probe for the /health endpoint.
package opensearch
