package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// TokenVerifier resolves an access token to its user ID.
type TokenVerifier interface {
	UserIDFromToken(token string) (string, error)
}

// CORS allows any origin; clients authenticate with bearer tokens, not
// cookies.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Requested-With", "Idempotency-Key"},
		MaxAge:          12 * time.Hour,
	})
}

func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if id := c.GetString(userIDKey); id != "" {
			fields = append(fields, "user_id", id)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			log.Error(ctx, "HTTP request", fields...)
		case status >= 400:
			log.Warn(ctx, "HTTP request", fields...)
		default:
			log.Info(ctx, "HTTP request", fields...)
		}
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// RequireAuth rejects requests without a valid access token and stores the
// token subject for the handlers.
func RequireAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing or invalid token"))
			return
		}
		userID, err := v.UserIDFromToken(token)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
