// File: carhive/utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// Session lifetimes. A "remember me" sign-in keeps the session for 30 days,
// otherwise it lasts one day.
const (
	SessionTTL      = 24 * time.Hour
	RememberMeTTL   = 30 * 24 * time.Hour
	AdminSessionTTL = 24 * time.Hour
)

// AuthSession represents an authenticated sign-in. It is keyed in Redis by the
// SHA-256 hash of the issued token, so a revoked session invalidates the token.
type AuthSession struct {
	SubjectID  string    `json:"subjectId"`
	Email      string    `json:"email"`
	Role       string    `json:"role"` // "user" or "admin"
	RememberMe bool      `json:"rememberMe"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// SaveAuthSession saves the session in Redis with the given TTL.
func SaveAuthSession(client *redis.Client, tokenHash string, session AuthSession, ttl time.Duration) error {
	session.CreatedAt = time.Now()
	session.ExpiresAt = session.CreatedAt.Add(ttl)
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+tokenHash, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the session from Redis. A missing key yields
// redis.Nil, which callers treat as "not signed in".
func GetAuthSession(client *redis.Client, tokenHash string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes a session from Redis.
func DeleteAuthSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+tokenHash).Err()
}

// RedisSessionStore persists sessions through the shared auth cache client.
type RedisSessionStore struct{}

func (RedisSessionStore) Save(tokenHash string, session AuthSession, ttl time.Duration) error {
	return SaveAuthSession(GetAuthCacheClient(), tokenHash, session, ttl)
}

func (RedisSessionStore) Delete(tokenHash string) error {
	return DeleteAuthSession(GetAuthCacheClient(), tokenHash)
}
