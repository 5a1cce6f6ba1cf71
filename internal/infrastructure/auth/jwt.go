package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"servitec/internal/domain/entities"
)

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET not set")
	ErrInvalidToken     = errors.New("invalid token")
)

// GenerateToken issues an HS256 token carrying the user's id and role. The
// role claim only identifies the capability set; authorization decisions
// stay in the usecases.
func GenerateToken(u entities.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", ErrMissingJWTSecret
	}

	expiryHours := 24
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID,
		"role": string(u.Role),
		"exp":  time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and returns the actor it identifies.
func ParseToken(tokenString string) (entities.Actor, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return entities.Actor{}, ErrMissingJWTSecret
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return entities.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Actor{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	actor := entities.Actor{ID: sub, Role: entities.UserRole(role)}
	if actor.ID == "" || !actor.Role.Valid() {
		return entities.Actor{}, ErrInvalidToken
	}
	return actor, nil
}
