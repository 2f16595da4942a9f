package jwthandling

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Information a token enocodes
type OperatorClaims struct {
	ID         string            `json:"id,omitempty"`
	InstanceID string            `json:"instance_id,omitempty"`
	IsAdmin    bool              `json:"is_admin,omitempty"`
	Payload    map[string]string `json:"payload,omitempty"`
	jwt.RegisteredClaims
}

func GenerateNewOperatorToken(expiresIn time.Duration, id string, instanceID string, isAdmin bool, payload map[string]string, secretKey string) (tokenString string, err error) {
	claims := OperatorClaims{
		id,
		instanceID,
		isAdmin,
		payload,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secretKey))
	return
}

func ValidateOperatorToken(tokenString string, secretKey string) (claims *OperatorClaims, valid bool, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if token == nil {
		return
	}
	claims, valid = token.Claims.(*OperatorClaims)
	valid = valid && token.Valid
	return
}
