package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v2"
)

// SearchIndexer mirrors stored documents into an OpenSearch index so stored
// candidates are searchable by name, skills, and experience.
type SearchIndexer struct {
	client *opensearch.Client
	index  string
}

// NewSearchIndexer creates an indexer writing to the named index.
func NewSearchIndexer(client *opensearch.Client, index string) *SearchIndexer {
	return &SearchIndexer{
		client: client,
		index:  index,
	}
}

// Index upserts one stored document under its document ID.
func (i *SearchIndexer) Index(ctx context.Context, doc StoredDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	res, err := i.client.Index(
		i.index,
		bytes.NewReader(body),
		i.client.Index.WithDocumentID(doc.ID),
		i.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index document: %s", res.Status())
	}
	return nil
}
