package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/models"
	"storefront/internal/repository"
)

const notFoundMarker = "notfound"

// CachedCatalog decorates the product repository with a Redis read cache.
// The storefront catalog only changes through the seed tool, so entries
// expire by TTL; there is no write path to invalidate against. Any Redis
// failure falls through to the database.
type CachedCatalog struct {
	realRepo repository.ProductRepository
	redis    *redis.Client
	ttl      time.Duration
}

func NewCachedCatalog(realRepo repository.ProductRepository, redis *redis.Client) *CachedCatalog {
	return &CachedCatalog{
		realRepo: realRepo,
		redis:    redis,
		ttl:      5 * time.Minute,
	}
}

func (c *CachedCatalog) getList(ctx context.Context, key string, load func(context.Context) ([]models.Product, error)) ([]models.Product, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var products []models.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		log.Printf("Failed to unmarshal cached %s (continuing with DB)", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Redis error (continuing with DB): %v", err)
	}

	products, err := load(ctx)
	if err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(products)
	if err != nil {
		log.Printf("Failed to marshal %s: %v", key, err)
		return products, nil
	}
	if err := c.redis.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache %s: %v", key, err)
	}

	return products, nil
}

func (c *CachedCatalog) GetAll(ctx context.Context) ([]models.Product, error) {
	return c.getList(ctx, "products:all", c.realRepo.GetAll)
}

func (c *CachedCatalog) GetFeatured(ctx context.Context) ([]models.Product, error) {
	return c.getList(ctx, "products:featured", c.realRepo.GetFeatured)
}

func (c *CachedCatalog) GetByGender(ctx context.Context, gender string) ([]models.Product, error) {
	key := fmt.Sprintf("products:gender:%s", gender)
	return c.getList(ctx, key, func(ctx context.Context) ([]models.Product, error) {
		return c.realRepo.GetByGender(ctx, gender)
	})
}

func (c *CachedCatalog) GetByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	key := fmt.Sprintf("products:category:%d", categoryID)
	return c.getList(ctx, key, func(ctx context.Context) ([]models.Product, error) {
		return c.realRepo.GetByCategory(ctx, categoryID)
	})
}

// GetBySlug caches single products and negative lookups: unknown slugs are
// remembered briefly so repeated bad URLs do not hammer the database.
func (c *CachedCatalog) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	key := fmt.Sprintf("product:slug:%s", slug)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return nil, repository.ErrNotFound
		}
		var product models.Product
		if err := json.Unmarshal(data, &product); err != nil {
			log.Printf("Failed to unmarshal cached product (continuing with DB): %v", err)
			break
		}
		return &product, nil

	case errors.Is(err, redis.Nil):

	default:
		log.Printf("Redis error (continuing with DB): %v", err)
	}

	product, err := c.realRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if setErr := c.redis.Set(ctx, key, notFoundMarker, 1*time.Minute).Err(); setErr != nil {
				log.Printf("Failed to cache notfound: %v", setErr)
			}
		}
		return nil, err
	}

	jsonData, err := json.Marshal(product)
	if err != nil {
		log.Printf("Failed to marshal product: %v", err)
		return product, nil
	}
	if err := c.redis.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache product: %v", err)
	}

	return product, nil
}

func (c *CachedCatalog) GetByID(ctx context.Context, id int) (*models.Product, error) {
	return c.realRepo.GetByID(ctx, id)
}

// Search is deliberately uncached: the keyspace is unbounded and results
// go stale the moment the catalog is reseeded.
func (c *CachedCatalog) Search(ctx context.Context, query string) ([]models.Product, error) {
	return c.realRepo.Search(ctx, query)
}
