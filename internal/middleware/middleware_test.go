package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"safespace-srv/internal/mocks"
	"safespace-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAllowOrigin(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		allowed []string
		want    string
	}{
		{"wildcard", "https://app.example.com", []string{"*"}, "*"},
		{"wildcard without origin", "", []string{"*"}, "*"},
		{"exact", "https://app.example.com", []string{"https://app.example.com"}, "https://app.example.com"},
		{"subdomain", "https://app.example.com", []string{"*.example.com"}, "https://app.example.com"},
		{"not listed", "https://evil.test", []string{"https://app.example.com"}, ""},
		{"no origin", "", []string{"https://app.example.com"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allowOrigin(tt.origin, tt.allowed))
		})
	}
}

func TestCORS(t *testing.T) {
	m := New(log.NewNop(), nil, NewCORSConfig([]string{"https://app.example.com"}))
	r := gin.New()
	r.Use(m.CORS())
	r.POST("/send-alert", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/send-alert", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("disallowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/send-alert", nil)
		req.Header.Set("Origin", "https://evil.test")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestNewCORSConfig_DefaultsToWildcard(t *testing.T) {
	assert.Equal(t, []string{"*"}, NewCORSConfig(nil).AllowedOrigins)
}

func TestRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockIDiscord(ctrl)

	reported := make(chan string, 8)
	d.EXPECT().ReportBug(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg string) error {
		reported <- msg
		return nil
	}).AnyTimes()

	m := New(log.NewNop(), d, NewCORSConfig(nil))
	r := gin.New()
	r.Use(m.Recovery())
	r.GET("/boom", func(c *gin.Context) { panic(errors.New("boom")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error_code":500,"message":"Something went wrong"}`, w.Body.String())
	assert.Contains(t, <-reported, "/boom")
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	m := New(log.NewNop(), nil, NewCORSConfig(nil))
	r := gin.New()
	r.Use(m.RequestLogger())
	r.GET("/live", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}
