package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsRouter(allowedOrigin string, production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(allowedOrigin, production))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestCORSOriginMatrix(t *testing.T) {
	tests := []struct {
		name          string
		allowedOrigin string
		production    bool
		origin        string
		expectedCode  int
	}{
		{
			name:         "no origin header passes through",
			production:   true,
			origin:       "",
			expectedCode: http.StatusOK,
		},
		{
			name:          "production allows the exact configured origin",
			allowedOrigin: "https://dinova.app",
			production:    true,
			origin:        "https://dinova.app",
			expectedCode:  http.StatusOK,
		},
		{
			name:          "production rejects other origins",
			allowedOrigin: "https://dinova.app",
			production:    true,
			origin:        "https://evil.example",
			expectedCode:  http.StatusForbidden,
		},
		{
			name:          "production rejects localhost",
			allowedOrigin: "https://dinova.app",
			production:    true,
			origin:        "http://localhost:3000",
			expectedCode:  http.StatusForbidden,
		},
		{
			name:         "production with no configured origin rejects everything",
			production:   true,
			origin:       "https://dinova.app",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "development allows localhost",
			production:   false,
			origin:       "http://localhost:3000",
			expectedCode: http.StatusOK,
		},
		{
			name:         "development allows 127.0.0.1",
			production:   false,
			origin:       "http://127.0.0.1:5173",
			expectedCode: http.StatusOK,
		},
		{
			name:          "development allows the configured origin",
			allowedOrigin: "https://staging.dinova.app",
			production:    false,
			origin:        "https://staging.dinova.app",
			expectedCode:  http.StatusOK,
		},
		{
			name:          "development rejects unknown origins",
			allowedOrigin: "https://staging.dinova.app",
			production:    false,
			origin:        "https://evil.example",
			expectedCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := corsRouter(tt.allowedOrigin, tt.production)

			req, err := http.NewRequest(http.MethodGet, "/api/health", nil)
			require.NoError(t, err)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "Not allowed by CORS.")
			}
			if tt.expectedCode == http.StatusOK && tt.origin != "" {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "Origin", w.Header().Get("Vary"))
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router := corsRouter("https://dinova.app", true)

	req, err := http.NewRequest(http.MethodOptions, "/api/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://dinova.app")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://dinova.app", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}
