package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"avdportal/pkg/jwt"
	"avdportal/pkg/log"
	"avdportal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJwt() *jwt.JWT {
	conf := viper.New()
	conf.Set("security.jwt.key", "middleware-test-key")
	return jwt.NewJwt(conf)
}

func authRouter(j *jwt.JWT) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", StrictAuth(j, log.NewNop()), func(ctx *gin.Context) {
		claims := ctx.MustGet(jwt.ContextKey).(*jwt.MyCustomClaims)
		ctx.String(http.StatusOK, claims.UserId)
	})
	return r
}

func TestStrictAuth(t *testing.T) {
	j := newJwt()
	token, err := j.GenToken("u-1", "admin", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			authRouter(j).ServeHTTP(w, req)
			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, "u-1", w.Body.String())
			}
		})
	}
}

func TestStrictAuth_ExpiredToken(t *testing.T) {
	j := newJwt()
	token, err := j.GenToken("u-1", "admin", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	authRouter(j).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.NewMetrics()
	r := gin.New()
	r.Use(MetricsMiddleware(m))
	r.GET("/templates/:id", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/templates/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/templates/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conf := viper.New()
	conf.Set("cors.allow_origins", []string{"https://portal.example.com"})

	r := gin.New()
	r.Use(CORSMiddleware(conf))
	r.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://portal.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestLogMiddleware_KeepsBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := log.NewNop()
	r.Use(ResponseLogMiddleware(logger), RequestLogMiddleware(logger))
	r.POST("/echo", func(ctx *gin.Context) {
		body, _ := ctx.GetRawData()
		ctx.String(http.StatusOK, string(body))
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"x"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, `{"name":"x"}`, w.Body.String())
	assert.True(t, isSensitive("/api/v1/login"))
	assert.False(t, isSensitive("/api/v1/templates"))
}
