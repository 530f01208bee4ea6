package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/GDOmega/pointercrate/internal/cache"
	"github.com/GDOmega/pointercrate/internal/config"
	"github.com/GDOmega/pointercrate/internal/utils"
)

// Configuration partagée par les handlers, initialisée au démarrage
var (
	cfg        *config.Config
	statsCache *cache.StatsCache
)

// Setup branche la configuration et le cache des statistiques
func Setup(c *config.Config) {
	cfg = c
	statsCache = cache.NewStatsCache(time.Duration(c.StatsCacheTTL) * time.Second)
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// parseLimit lit le paramètre ?limit= et le borne entre 1 et 100
func parseLimit(r *http.Request, defaultLimit int) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > 100 {
		return 100
	}
	return limit
}
