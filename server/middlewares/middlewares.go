package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/newshubio/newshub/utils/log"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIdHeader carries the request id on both request and response.
	RequestIdHeader = "X-Request-Id"

	requestIdKey = "request_id"
)

// RequestId tags every request with a unique id, reusing the caller's when
// one is provided. The id is echoed back on the response and attached to the
// request log line.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Request.Header.Get(RequestIdHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIdKey, id)
		c.Writer.Header().Set(RequestIdHeader, id)
		c.Next()
	}
}

// RequestLogger emits one structured log line per handled request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		Log.WithFields(logrus.Fields{
			"request_id": c.GetString(requestIdKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}).Info("request handled")
	}
}
