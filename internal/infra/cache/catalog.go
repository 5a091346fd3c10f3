package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"lunchbox/internal/domain/catalog"
	"lunchbox/internal/infra/readstore"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const productKeyPrefix = "lunchbox:product:"

// CachedCatalog is a read-through cache over the catalog read store.
// Stock-derived prices tolerate short staleness on display paths; command
// paths that need fresh prices read through the transaction instead.
type CachedCatalog struct {
	inner readstore.ProductSource
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedCatalog(inner readstore.ProductSource, rdb *redis.Client, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedCatalog) FindProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	key := productKeyPrefix + id.String()

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var product catalog.Product
		if unmarshalErr := json.Unmarshal(raw, &product); unmarshalErr == nil {
			return &product, nil
		}
		// Corrupt entry; fall through and overwrite it.
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("product cache read failed", "error", err.Error())
	}

	product, err := c.inner.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, marshalErr := json.Marshal(product); marshalErr == nil {
		if setErr := c.rdb.Set(ctx, key, raw, c.ttl).Err(); setErr != nil {
			slog.Warn("product cache write failed", "error", setErr.Error())
		}
	}

	return product, nil
}
