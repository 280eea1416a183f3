package http

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/mailscout"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header and context keys used by the middleware.
const (
	apiKeyHeader    = "X-API-KEY"
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	// maxRequestIDLen bounds client-supplied request IDs.
	maxRequestIDLen = 128
)

// recoveryMiddleware turns panics into a logged 500 response.
func recoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					"error", rec,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"request_id", c.GetString(requestIDKey),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware propagates X-Request-ID, generating one if the client
// sent none or an oversized value.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// loggerMiddleware writes one log line per request.
func loggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(requestIDKey),
		}
		if len(c.Errors) > 0 {
			logger.Error("http request", append(attrs, "errors", c.Errors.Errors())...)
			return
		}
		logger.Info("http request", attrs...)
	}
}

// authMiddleware enforces the shared-secret header when token is set.
func authMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		got := c.GetHeader(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			writeError(c, mailscout.Errorf(mailscout.EUNAUTHORIZED, "unauthorized"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// rateLimitMiddleware rejects clients that exceed their request budget.
func rateLimitMiddleware(limiter *ClientLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ip := c.ClientIP(); !limiter.Allow(ip) {
			logger.Warn("rate limited",
				"client_ip", ip,
				"tracked_clients", limiter.Len(),
				"request_id", c.GetString(requestIDKey),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}
