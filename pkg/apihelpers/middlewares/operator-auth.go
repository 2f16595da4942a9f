package middlewares

import (
	"log/slog"
	"net/http"

	jwthandling "github.com/sohosai/sos-backend/pkg/jwt-handling"
	"github.com/sohosai/sos-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

// OperatorAuthMiddleware validates the operator token and checks the instance
// against the allowlist in one step.
func OperatorAuthMiddleware(tokenSignKey string, allowedInstanceIDs []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		parsedToken, ok, err := jwthandling.ValidateOperatorToken(token, tokenSignKey)
		if err != nil || !ok {
			slog.Warn("token validation failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}

		if !utils.ContainsString(allowedInstanceIDs, parsedToken.InstanceID) {
			slog.Warn("instanceID not allowed", slog.String("instanceID", parsedToken.InstanceID), slog.String("path", c.Request.URL.Path))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "instanceID not allowed"})
			c.Abort()
			return
		}
		c.Set("validatedToken", parsedToken)
	}
}

func IsAdminOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenValue, ok := c.Get("validatedToken")
		if !ok {
			slog.Warn("IsAdminOperator: validatedToken not found in context")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validatedToken not found in context"})
			return
		}
		parsedToken := tokenValue.(*jwthandling.OperatorClaims)

		if !parsedToken.IsAdmin {
			slog.Warn("IsAdminOperator Middleware: non admin operator tried to access admin endpoint", slog.String("instanceID", parsedToken.InstanceID), slog.String("operatorID", parsedToken.ID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access to admin endpoint"})
			return
		}
	}
}
