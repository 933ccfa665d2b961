// Package httptransport runs the ftracker HTTP server: router, middleware
// and graceful shutdown.
package httptransport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"
	requestIDKey    = "request_id"
)

// NewRouter returns gin engine with request id, logging and recovery
// middleware, the /metrics endpoint and the given routes.
func NewRouter(logger *zap.Logger, routes ...func(gin.IRouter)) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(RequestID(), Logger(logger, "http"), gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	for _, register := range routes {
		register(r)
	}
	return r
}

// RequestID keeps the incoming X-Request-ID or generates a new one, and
// echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.Must(uuid.NewV4()).String()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Logger logs every completed request; level follows the response status.
func Logger(l *zap.Logger, name string) gin.HandlerFunc {
	if l == nil {
		panic("httptransport.Logger received a nil *zap.Logger")
	}
	logger := l.Named(name)

	return func(c *gin.Context) {
		t1 := time.Now()
		c.Next()

		statusCode := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("http_method", c.Request.Method),
			zap.String("http_path", c.Request.URL.Path),
			zap.String("remote_addr", c.ClientIP()),
			zap.Int("http_status_code", statusCode),
			zap.Int("response_bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(t1)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		msg := fmt.Sprintf("HTTP request completed: %s", c.Request.URL.Path)
		switch {
		case statusCode >= http.StatusInternalServerError:
			logger.Error(msg, fields...)
		case statusCode >= http.StatusBadRequest:
			logger.Warn(msg, fields...)
		default:
			logger.Info(msg, fields...)
		}
	}
}
