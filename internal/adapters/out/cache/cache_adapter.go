package cache

import (
	"context"
	"sync"
	"time"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
	lru "github.com/hashicorp/golang-lru/v2"
)

type estimatesCache struct {
	cache *lru.Cache[string, domain.Estimate]
}

type rateCache struct {
	rate      float64
	timestamp time.Time
	ttl       time.Duration
}

type CacheAdapter struct {
	estimates *estimatesCache
	usdRate   *rateCache
	mu        sync.RWMutex
	logger    out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruEstimates, err := lru.New[string, domain.Estimate](cfg.Cache.EstimatesSize)
	if err != nil {
		logger.Error("cache.estimates.init_failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.EstimatesSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		estimates: &estimatesCache{cache: lruEstimates},
		usdRate:   &rateCache{ttl: cfg.Cache.RateTTL},
		logger:    logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) GetEstimate(ctx context.Context, key string) (*domain.Estimate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	estimate, exists := c.estimates.cache.Get(key)
	if !exists {
		c.logger.Debug("cache.estimates.miss", out.LogFields{
			"key": key,
		})
		return nil, false
	}

	c.logger.Debug("cache.estimates.hit", out.LogFields{
		"key": key,
	})
	return &estimate, true
}

func (c *CacheAdapter) StoreEstimate(ctx context.Context, key string, estimate domain.Estimate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.estimates.cache.Add(key, estimate)
}

// Кэширование курса валюты

func (c *CacheAdapter) GetUSDRate(ctx context.Context) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.usdRate.rate == 0 || time.Since(c.usdRate.timestamp) > c.usdRate.ttl {
		return 0, false
	}

	return c.usdRate.rate, true
}

func (c *CacheAdapter) StoreUSDRate(ctx context.Context, rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.usdRate.rate = rate
	c.usdRate.timestamp = time.Now()
}
