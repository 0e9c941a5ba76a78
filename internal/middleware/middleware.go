// Package middleware holds the gin middleware composed by the server.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/snnyvrz/bookshelf/internal/auth"
	"github.com/snnyvrz/bookshelf/internal/ratelimit"
	"github.com/snnyvrz/bookshelf/internal/validation"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID propagates an incoming X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Recovery turns panics into a 500 error body and logs the panic value.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"panic", fmt.Sprint(recovered),
		)
		validation.Abort(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	})
}

// RequestLogger logs one line per request once the handler chain returns.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", GetRequestID(c),
			"client_ip", c.ClientIP(),
		}
		if user := auth.FromContext(c.Request.Context()); !user.IsAnonymous() {
			attrs = append(attrs, "user", user.Login)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request", attrs...)
		case status >= http.StatusBadRequest:
			log.Warn("request", attrs...)
		default:
			log.Info("request", attrs...)
		}
	}
}

// RateLimit rejects clients that exceed their token bucket with 429.
func RateLimit(limiter *ratelimit.KeyedRateLimiter, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !limiter.Allow(key) {
			log.Warn("rate limit exceeded", "ip", key, "path", c.Request.URL.Path)
			validation.Abort(c, http.StatusTooManyRequests,
				"RATE_LIMITED",
				"too many requests, please try again later",
			)
			return
		}
		c.Next()
	}
}

// Authenticate resolves the bearer token into the acting user. Requests
// without a token continue as anonymous; an unknown token is rejected.
func Authenticate(dir *auth.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			validation.Abort(c, http.StatusUnauthorized,
				"UNAUTHORIZED",
				"authorization header must use the Bearer scheme",
			)
			return
		}

		user, ok := dir.Lookup(token)
		if !ok {
			validation.Abort(c, http.StatusUnauthorized,
				"UNAUTHORIZED",
				"invalid token",
			)
			return
		}

		c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

// Require checks a collection-level action before the handler runs.
func Require(policy auth.Policy, action auth.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.FromContext(c.Request.Context())
		if policy(action, nil, user) {
			c.Next()
			return
		}
		AbortDenied(c, user)
	}
}

// AbortDenied answers 401 to anonymous callers and 403 to authenticated ones.
func AbortDenied(c *gin.Context, user auth.User) {
	if user.IsAnonymous() {
		validation.Abort(c, http.StatusUnauthorized,
			"UNAUTHORIZED",
			"authentication required",
		)
		return
	}
	validation.Abort(c, http.StatusForbidden,
		"FORBIDDEN",
		"you are not allowed to do that",
	)
}
