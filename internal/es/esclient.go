package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/sunnyday_shop/internal/config"
	"github.com/Skotchmaster/sunnyday_shop/internal/models"
)

const ProductIndex = "products"

func NewClient(cfg *config.Config) (*elasticsearch.Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ES_URL},
		Username:  cfg.ES_USER,
		Password:  cfg.ES_PASSWORD,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch error: %s: %s", res.Status(), body)
	}

	return client, nil
}

// IndexProducts writes every product into the search index, keyed by the
// product id so reseeding stays idempotent.
func IndexProducts(ctx context.Context, client *elasticsearch.Client, index string, products []models.Product) error {
	for i := range products {
		data, err := json.Marshal(products[i])
		if err != nil {
			return fmt.Errorf("marshal product %d: %w", products[i].ID, err)
		}

		res, err := client.Index(
			index,
			bytes.NewReader(data),
			client.Index.WithDocumentID(strconv.FormatUint(uint64(products[i].ID), 10)),
			client.Index.WithContext(ctx),
		)
		if err != nil {
			return fmt.Errorf("index product %d: %w", products[i].ID, err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("index product %d: %s", products[i].ID, res.Status())
		}
	}
	return nil
}
