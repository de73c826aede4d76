package productcontroller

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/yogendra-08/vastraverse-api/models"
)

const (
	productListCacheKey = "vastraverse:products"
	productListCacheTTL = 5 * time.Minute
)

// cachedProductList returns the cached unfiltered listing, or nil on a miss.
// Cache failures degrade to the database; they are never surfaced.
func cachedProductList(ctx context.Context, rdb *redis.Client) []models.Product {
	if rdb == nil {
		return nil
	}
	data, err := rdb.Get(ctx, productListCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("product cache read failed: %v", err)
		}
		return nil
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil
	}
	return products
}

func cacheProductList(ctx context.Context, rdb *redis.Client, products []models.Product) {
	if rdb == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, productListCacheKey, data, productListCacheTTL).Err(); err != nil {
		log.Printf("product cache write failed: %v", err)
	}
}

// invalidateProductCache drops the listing after any catalog mutation.
func invalidateProductCache(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, productListCacheKey).Err(); err != nil {
		log.Printf("product cache invalidation failed: %v", err)
	}
}
