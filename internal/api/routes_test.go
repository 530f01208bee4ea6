package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GDOmega/pointercrate/internal/config"
	"github.com/GDOmega/pointercrate/internal/handler"
	"github.com/GDOmega/pointercrate/internal/utils"
)

func TestRouterServesHealthAndRoot(t *testing.T) {
	handler.Setup(&config.Config{ListSize: 75, ExtendedListSize: 150, StatsCacheTTL: 60})
	router := SetupRouter()

	t.Run("health check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp utils.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "ok", resp.Message)
	})

	t.Run("documentation à la racine", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/nations/{countryCode}")
	})

	t.Run("route inconnue en 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/does-not-exist/at-all/nope", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
