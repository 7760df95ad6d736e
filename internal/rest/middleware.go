package rest

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/classicrypt/internal/metrics"
)

func observeRequests(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		// raw request paths never become label values
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.APIRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		collector.APIDurations.WithLabelValues(route).Observe(time.Since(started).Seconds())
	}
}
