package jwthandling

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Information a token enocodes
type ApplicantClaims struct {
	InstanceID string            `json:"instance_id,omitempty"`
	ProjectID  string            `json:"project_id,omitempty"`
	SessionID  string            `json:"session_id,omitempty"`
	Payload    map[string]string `json:"payload,omitempty"`
	jwt.RegisteredClaims
}

func GenerateNewApplicantToken(
	expiresIn time.Duration,
	id string,
	instanceID string,
	projectID string,
	payload map[string]string,
	secretKey string,
	sessionID string,
) (tokenString string, err error) {
	claims := ApplicantClaims{
		instanceID,
		projectID,
		sessionID,
		payload,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   id,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secretKey))
	return
}

func ValidateApplicantToken(tokenString string, secretKey string) (claims *ApplicantClaims, valid bool, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &ApplicantClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if token == nil {
		return
	}
	claims, valid = token.Claims.(*ApplicantClaims)
	valid = valid && token.Valid
	return
}
