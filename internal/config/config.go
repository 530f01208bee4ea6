package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config contient toute la configuration du serveur
type Config struct {
	Port string

	// PostgreSQL
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Taille des listes (paliers main / extended / legacy)
	ListSize         int
	ExtendedListSize int

	// Durée de vie du cache des statistiques, en secondes
	StatsCacheTTL int
}

// LoadConfig lit la configuration depuis les variables d'environnement
func LoadConfig() (*Config, error) {
	// Charger .env s'il existe (erreur ignorée sinon)
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnvOrDefault("PORT", "8080"),
		DBHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:     getEnvOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvOrDefault("DB_NAME", "pointercrate"),
	}

	listSize, err := getEnvInt("LIST_SIZE", 75)
	if err != nil {
		return nil, err
	}
	cfg.ListSize = listSize

	extendedListSize, err := getEnvInt("EXTENDED_LIST_SIZE", 150)
	if err != nil {
		return nil, err
	}
	cfg.ExtendedListSize = extendedListSize

	cacheTTL, err := getEnvInt("STATS_CACHE_TTL", 300)
	if err != nil {
		return nil, err
	}
	cfg.StatsCacheTTL = cacheTTL

	// Les paliers doivent être cohérents
	if cfg.ListSize <= 0 {
		return nil, fmt.Errorf("LIST_SIZE must be positive, got %d", cfg.ListSize)
	}
	if cfg.ExtendedListSize < cfg.ListSize {
		return nil, fmt.Errorf("EXTENDED_LIST_SIZE (%d) must be >= LIST_SIZE (%d)", cfg.ExtendedListSize, cfg.ListSize)
	}

	if cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
