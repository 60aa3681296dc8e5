package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/keeperschule/booking-api/internal/metrics"
)

// CountRequests records one counter sample per finished request, labeled by
// method, route template and status.
func CountRequests(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.HTTPRequests.WithLabelValues(
			ctx.Request.Method,
			path,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
	}
}
