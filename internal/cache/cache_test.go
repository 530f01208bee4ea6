package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/GDOmega/pointercrate/internal/models"
)

func TestStatsCache(t *testing.T) {
	c := NewStatsCache(time.Minute)

	_, found := c.Get("FR")
	assert.False(t, found)

	stats := &model.NationStats{
		Nation: model.Nation{Name: "France", CountryCode: "FR", Rank: 3, Score: 421.5},
	}
	c.Set("FR", stats)

	got, found := c.Get("FR")
	require.True(t, found)
	assert.Equal(t, "France", got.Nation.Name)

	c.Flush()
	_, found = c.Get("FR")
	assert.False(t, found)
}

func TestStatsCacheExpiration(t *testing.T) {
	c := NewStatsCache(10 * time.Millisecond)

	c.Set("DE", &model.NationStats{Nation: model.Nation{CountryCode: "DE"}})
	time.Sleep(30 * time.Millisecond)

	_, found := c.Get("DE")
	assert.False(t, found)
}
