package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_USER", "pointercrate")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 75, cfg.ListSize)
	assert.Equal(t, 150, cfg.ExtendedListSize)
	assert.Equal(t, 300, cfg.StatsCacheTTL)
	assert.Equal(t, "pointercrate", cfg.DBName)
}

func TestLoadConfigRequiresDBUser(t *testing.T) {
	t.Setenv("DB_USER", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidListSizes(t *testing.T) {
	tests := []struct {
		name     string
		listSize string
		extended string
	}{
		{name: "LIST_SIZE nul", listSize: "0", extended: "150"},
		{name: "LIST_SIZE négatif", listSize: "-5", extended: "150"},
		{name: "EXTENDED_LIST_SIZE inférieur à LIST_SIZE", listSize: "75", extended: "50"},
		{name: "LIST_SIZE non numérique", listSize: "abc", extended: "150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_USER", "pointercrate")
			t.Setenv("LIST_SIZE", tt.listSize)
			t.Setenv("EXTENDED_LIST_SIZE", tt.extended)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_USER", "pointercrate")
	t.Setenv("LIST_SIZE", "50")
	t.Setenv("EXTENDED_LIST_SIZE", "100")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.ListSize)
	assert.Equal(t, 100, cfg.ExtendedListSize)
	assert.Equal(t, "9090", cfg.Port)
}
