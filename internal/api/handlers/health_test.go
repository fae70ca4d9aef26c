package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", HealthCheck)

	req, err := http.NewRequest(http.MethodGet, "/api/health", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK        bool   `json:"ok"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)

	_, err = time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestGetMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewMetricsHandler("1.2.3", testModelID)
	router.GET("/api/metrics", handler.GetMetrics)

	req, err := http.NewRequest(http.MethodGet, "/api/metrics", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp MetricsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, testModelID, resp.Model)
	assert.NotEmpty(t, resp.Uptime)
	assert.NotEmpty(t, resp.System.GoVersion)
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"seconds only", 42*time.Second + 500*time.Millisecond, "42.50s"},
		{"minutes and seconds", 3*time.Minute + 5*time.Second, "3m5.00s"},
		{"hours", 2*time.Hour + 30*time.Minute + 15*time.Second, "2h30m15.00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatUptime(tt.duration))
		})
	}
}
