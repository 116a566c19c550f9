package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/declanmoran/omahonys-pub/internal/auth/service"
)

// OperatorIDKey is the context key the validated operator id is stored under.
const OperatorIDKey = "operator_id"

// RequireOperator returns a middleware that validates a Bearer session token
// and injects the operator id into the request context. Requests without a
// valid token get a 401 and never reach the handler.
func RequireOperator(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauthorized(c, "missing bearer token")
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		operatorID, err := authService.VerifyToken(secret, raw)
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(OperatorIDKey, operatorID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "AUTH_ERROR",
			"message": message,
		},
	})
}
