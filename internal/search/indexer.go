package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"

	"github.com/Skotchmaster/vape_shop/internal/models"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
)

// Indexer keeps one Elasticsearch document per product, keyed by product id.
type Indexer struct {
	ES    *elasticsearch.Client
	Index string
}

func NewIndexer(es *elasticsearch.Client, index string) *Indexer {
	return &Indexer{ES: es, Index: index}
}

func (ix *Indexer) Put(ctx context.Context, p models.Product) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	res, err := ix.ES.Index(ix.Index, bytes.NewReader(body),
		ix.ES.Index.WithContext(ctx),
		ix.ES.Index.WithDocumentID(p.ID),
	)
	if err != nil {
		return fmt.Errorf("index product %s: %w", p.ID, err)
	}
	return checkResponse(res, "index product "+p.ID)
}

func (ix *Indexer) Remove(ctx context.Context, id string) error {
	res, err := ix.ES.Delete(ix.Index, id, ix.ES.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if res.StatusCode == http.StatusNotFound {
		res.Body.Close()
		return nil
	}
	return checkResponse(res, "delete product "+id)
}

// Reindex writes every product in one bulk request.
func (ix *Indexer) Reindex(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, p := range products {
		meta := map[string]any{"index": map[string]any{"_index": ix.Index, "_id": p.ID}}
		if err := enc.Encode(meta); err != nil {
			return err
		}
		if err := enc.Encode(p); err != nil {
			return err
		}
	}

	res, err := ix.ES.Bulk(&buf, ix.ES.Bulk.WithContext(ctx), ix.ES.Bulk.WithRefresh("true"))
	if err != nil {
		return fmt.Errorf("bulk reindex: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("bulk reindex: %s: %s", res.Status(), body)
	}

	var r struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return fmt.Errorf("bulk reindex: decode: %w", err)
	}
	if r.Errors {
		return fmt.Errorf("bulk reindex: some documents were rejected")
	}
	return nil
}

func (ix *Indexer) ProductSaved(ctx context.Context, p models.Product, _ bool) {
	if err := ix.Put(ctx, p); err != nil {
		logging.FromContext(ctx).Error("search_index_error", "product_id", p.ID, "error", err)
	}
}

func (ix *Indexer) ProductDeleted(ctx context.Context, id string) {
	if err := ix.Remove(ctx, id); err != nil {
		logging.FromContext(ctx).Error("search_index_error", "product_id", id, "error", err)
	}
}

func checkResponse(res *esapi.Response, op string) error {
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("%s: %s: %s", op, res.Status(), body)
	}
	return nil
}
