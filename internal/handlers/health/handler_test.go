package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creaturelab/creature-api/internal/pkg/clock"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	frozen := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	router := gin.New()
	NewHandler(&clock.Fixed{T: frozen}).RegisterRoutes(router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "2026-08-31T12:00:00Z", body["timestamp"])
}

func TestNewHandler_DefaultClock(t *testing.T) {
	h := NewHandler(nil)
	assert.NotNil(t, h.clock)
}
