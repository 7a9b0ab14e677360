package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"carhive/config"

	"github.com/golang-jwt/jwt"
)

// Role claims carried by issued tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// signingSecret resolves the HS256 key from config. The fallback keeps
// development tokens working before a secret is configured.
func signingSecret() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "CARHIVE"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token with the given subject (userID or
// the configured admin ID), email and role. The token expires after the
// specified duration.
func GenerateToken(subject, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingSecret(), nil
	})
}

// ExtractIDFromToken extracts the subject and role from a valid JWT token
// string. It returns an error if validation fails or the claims are missing.
func ExtractIDFromToken(tokenString string) (subject string, role string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}

	roleClaim, ok := claims["role"].(string)
	if !ok || roleClaim == "" {
		return "", "", errors.New("token does not contain a valid 'role' claim")
	}

	return sub, roleClaim, nil
}
