package middleware

import (
	"strconv"
	"time"

	"avdportal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware 记录请求数与耗时；path 取路由模板，避免 ID 造成标签爆炸
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).Inc()
		m.HTTPRequestDurationSeconds.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
