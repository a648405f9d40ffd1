package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptcraft/backend/internal/config"
	"promptcraft/backend/internal/features/config/application"
	"promptcraft/backend/internal/features/config/domain"
)

func newConfigRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	path := filepath.Join(t.TempDir(), "app_config.json")
	h := NewAppConfigHandler(application.NewConfigService(config.NewAppConfigService(path)))

	r := gin.New()
	r.GET("/api/config/app", h.GetAppConfigHandler)
	r.POST("/api/config/app", h.SaveAppConfigHandler)
	return r
}

func TestGetAppConfigDefaults(t *testing.T) {
	r := newConfigRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/config/app", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.AppConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.DefaultAppConfig(), got)
}

func TestSaveAppConfig(t *testing.T) {
	r := newConfigRouter(t)

	body := `{"provider":"openai","model_params":{"model":"gpt-4o-mini","temperature":0.3,"max_tokens":512},"toast_duration_ms":2000}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/config/app", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/config/app", nil))
	var got domain.AppConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "openai", got.Provider)
	assert.Equal(t, 0.3, got.ModelParams.Temperature)
	assert.Equal(t, 2000, got.ToastDurationMs)
}

func TestSaveAppConfigRejectsInvalid(t *testing.T) {
	r := newConfigRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{"provider":`, http.StatusBadRequest},
		{"unknown provider", `{"provider":"claude"}`, http.StatusBadRequest},
		{"temperature out of range", `{"provider":"gemini","model_params":{"temperature":3}}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/config/app", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
