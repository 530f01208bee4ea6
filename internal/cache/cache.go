package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	model "github.com/GDOmega/pointercrate/internal/models"
)

// StatsCache garde en mémoire les statistiques calculées par nation.
// Les statistiques sont recalculées après expiration, pas d'invalidation.
type StatsCache struct {
	cache *gocache.Cache
}

// NewStatsCache crée un cache avec la durée de vie donnée
func NewStatsCache(ttl time.Duration) *StatsCache {
	return &StatsCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Get retourne les statistiques d'une nation si elles sont encore valides
func (c *StatsCache) Get(countryCode string) (*model.NationStats, bool) {
	if val, found := c.cache.Get(countryCode); found {
		return val.(*model.NationStats), true
	}
	return nil, false
}

// Set mémorise les statistiques d'une nation
func (c *StatsCache) Set(countryCode string, stats *model.NationStats) {
	c.cache.Set(countryCode, stats, gocache.DefaultExpiration)
}

// Flush vide le cache
func (c *StatsCache) Flush() {
	c.cache.Flush()
}
