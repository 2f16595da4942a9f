package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	jwthandling "github.com/sohosai/sos-backend/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

const (
	HeaderAuthorization = "Authorization"
)

// GetAndValidateApplicantJWT extracts the JWT from the request and validates it
func GetAndValidateApplicantJWT(tokenSignKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		parsedToken, ok, err := jwthandling.ValidateApplicantToken(token, tokenSignKey)
		if err != nil || !ok {
			slog.Warn("token validation failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}
		c.Set("token", token)
		c.Set("validatedToken", parsedToken)
	}
}

// Can be used by other services to validate the JWT token of operators
func GetAndValidateOperatorJWT(tokenSignKey string) gin.HandlerFunc {
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
		c.Set("validatedToken", parsedToken)
	}
}

func extractToken(c *gin.Context) (string, error) {
	req := c.Request

	var token string
	tokens, ok := req.Header[HeaderAuthorization]
	if ok && len(tokens) > 0 {
		token = tokens[0]
		token = strings.TrimPrefix(token, "Bearer ")
		if len(token) == 0 {
			return token, errors.New("No token found in Authorization header")
		}
	} else {
		return token, errors.New("No Authorization header found")
	}
	return token, nil
}
