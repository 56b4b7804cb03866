// Package auth handles JWT token generation and validation
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/midnightblog/backend/internal/models"
)

// Identity is the authenticated caller extracted from a bearer token
type Identity struct {
	ID   int
	Role models.Role
}

// TokenGenerator handles JWT token generation and validation
type TokenGenerator struct {
	secret      string
	tokenExpiry time.Duration
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, tokenExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Generate creates a signed token carrying the user id and role.
// Tokens always carry an explicit expiry.
func (tg *TokenGenerator) Generate(userID int, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"role": string(role),
		"exp":  time.Now().Add(tg.tokenExpiry).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses a token and returns the identity it carries.
// Validation fails closed: any parse, signature or expiry failure is an error.
func (tg *TokenGenerator) Validate(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})

	if err != nil {
		return Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return Identity{}, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	// Extract user id (JWT claims decode numbers as float64)
	userID, ok := claims["id"].(float64)
	if !ok {
		return Identity{}, fmt.Errorf("id not found in token")
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Identity{}, fmt.Errorf("role not found in token")
	}
	role := models.Role(roleStr)
	if !role.Valid() {
		return Identity{}, fmt.Errorf("unknown role in token")
	}

	return Identity{ID: int(userID), Role: role}, nil
}
