package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single origin", "https://app.example.com", []string{"https://app.example.com"}},
		{
			"multiple with whitespace",
			" https://a.example.com , https://b.example.com ",
			[]string{"https://a.example.com", "https://b.example.com"},
		},
		{"trailing comma", "https://a.example.com,", []string{"https://a.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseOrigins(tt.input))
		})
	}
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("DisabledReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(false, "https://app.example.com", logger))
	})

	t.Run("EnabledWithoutOriginsReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, "", logger))
	})

	t.Run("EnabledAllowsConfiguredOrigin", func(t *testing.T) {
		middleware := createCORSMiddleware(true, "https://app.example.com", logger)
		require.NotNil(t, middleware)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(middleware)
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "test"})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "https://app.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
