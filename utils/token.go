package authUtils

import (
	"errors"
	"fmt"
	"time"

	"civicreporter/models"

	"github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid authorization token")

// GenerateToken signs a token bound to the given admin session.
func GenerateToken(sess models.Session, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("JWT secret is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":   sess.ID,
		"email": sess.Email,
		"role":  sess.Role,
		"exp":   time.Now().Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry and returns the session the
// token was issued for.
func ParseToken(tokenString, secret string) (models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Session{}, ErrInvalidToken
	}

	sid, _ := claims["sid"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sid == "" || email == "" {
		return models.Session{}, ErrInvalidToken
	}

	return models.Session{ID: sid, Email: email, Role: role}, nil
}
