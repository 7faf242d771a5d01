package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/DanteA11/TweetsApi/crud"
	"github.com/DanteA11/TweetsApi/model"
)

const userKey = "user"

// slowRequestThreshold flags handlers that spend too long in storage.
const slowRequestThreshold = 2 * time.Second

// ApiKeyAuth resolves the api-key header to a user and stores it on the
// context for handlers. A missing header is a validation failure (422), an
// unrecognized key is rejected with 400 before any handler runs.
func ApiKeyAuth(ctrl *crud.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("api-key")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
				"result":        false,
				"error_type":    "ValidationError",
				"error_message": "api-key header required",
			})
			return
		}
		user, err := ctrl.GetUserByApiKey(c.Request.Context(), apiKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"result":        false,
				"error_type":    "InternalError",
				"error_message": err.Error(),
			})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"result":        false,
				"error_type":    "AuthError",
				"error_message": "api-key header invalid",
			})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user set by ApiKeyAuth. Handlers behind the
// middleware can rely on it being present.
func CurrentUser(c *gin.Context) *model.User {
	return c.MustGet(userKey).(*model.User)
}

// RequestId tags every request with a uuid, echoed in the response header
// and attached to the request log line.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// RequestLogging logs every request with method, path, status and duration,
// warning on slow ones.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start)
		entry := logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   duration,
			"remote_ip":  c.ClientIP(),
			"request_id": c.GetString("request_id"),
		})
		if duration > slowRequestThreshold {
			entry.Warn("slow request")
		} else {
			entry.Info("request completed")
		}
	}
}
