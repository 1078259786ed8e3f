package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/slok/go-http-metrics/metrics/prometheus"
	metricsmw "github.com/slok/go-http-metrics/middleware"
	ginmw "github.com/slok/go-http-metrics/middleware/gin"
)

// HTTPMetrics creates a Gin middleware recording request metrics to the
// default prometheus registry; main exposes them on /metrics.
func HTTPMetrics() gin.HandlerFunc {
	m := metricsmw.New(metricsmw.Config{
		Recorder: prometheus.NewRecorder(prometheus.Config{}),
	})
	return ginmw.Handler("", m)
}
