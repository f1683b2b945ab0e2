package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"io.winapps.foodshare/internal/metrics"
)

// maxLoggedBody caps how much of an error response ends up in the log line.
const maxLoggedBody = 2048

// quietRoutes are polled by probes and scrapers; successful hits are logged at debug.
var quietRoutes = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestIDMiddleware ensures every request has a request_id available in headers and context
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Set("request_id", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// errorBodyWriter keeps the first maxLoggedBody bytes of 4xx/5xx responses. Post pages are
// never buffered.
type errorBodyWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *errorBodyWriter) Write(b []byte) (int, error) {
	if w.Status() >= http.StatusBadRequest && w.body.Len() < maxLoggedBody {
		room := maxLoggedBody - w.body.Len()
		if len(b) < room {
			room = len(b)
		}
		w.body.Write(b[:room])
	}
	return w.ResponseWriter.Write(b)
}

// dashboardFields are the request attributes every dashboard log line carries.
func dashboardFields(c *gin.Context) []interface{} {
	role := ""
	if r, ok := c.Get(RoleKey); ok {
		role = fmt.Sprint(r)
	}
	return []interface{}{
		"request_id", c.GetString("request_id"),
		"method", c.Request.Method,
		"route", c.FullPath(),
		"path", c.Request.URL.Path,
		"query", c.Request.URL.RawQuery,
		"role", role,
		"client_ip", c.ClientIP(),
	}
}

// RequestLoggingMiddleware logs each finished request with its dashboard role and matched
// route. Error responses include their (truncated) body.
func RequestLoggingMiddleware(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		w := &errorBodyWriter{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		fields := append(dashboardFields(c),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		)

		switch {
		case status >= http.StatusInternalServerError:
			logger.Errorw("request completed with server error", append(fields, "response", w.body.String())...)
		case status >= http.StatusBadRequest:
			logger.Warnw("request completed with client error", append(fields, "response", w.body.String())...)
		case quietRoutes[c.FullPath()]:
			logger.Debugw("request completed", fields...)
		default:
			logger.Infow("request completed", fields...)
		}
	}
}

// RecoveryMiddleware turns a handler panic into the API's JSON error shape and counts it
// per route.
func RecoveryMiddleware(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			metrics.HandlerPanics.WithLabelValues(route).Inc()
			logger.Errorw("panic recovered",
				append(dashboardFields(c), "panic", r, "stack", string(debug.Stack()))...,
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":      "Internal server error",
				"request_id": c.GetString("request_id"),
			})
		}()
		c.Next()
	}
}
