package utils_test

import (
	"testing"
	"time"

	"carhive/config"
	"carhive/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	orig := config.AppConfig.JWTSecret
	defer func() { config.AppConfig.JWTSecret = orig }()
	config.AppConfig.JWTSecret = "round-trip-secret"

	token, err := utils.GenerateToken("u1", "jamie@example.com", utils.RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sub, role, err := utils.ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if sub != "u1" || role != utils.RoleUser {
		t.Fatalf("token claims = (%s, %s); want (u1, %s)", sub, role, utils.RoleUser)
	}
}

func TestTokenRejectedAfterSecretChange(t *testing.T) {
	orig := config.AppConfig.JWTSecret
	defer func() { config.AppConfig.JWTSecret = orig }()

	config.AppConfig.JWTSecret = "first-secret"
	token, err := utils.GenerateToken("u1", "jamie@example.com", utils.RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	config.AppConfig.JWTSecret = "second-secret"
	if _, _, err := utils.ExtractIDFromToken(token); err == nil {
		t.Fatal("token validated across a secret change")
	}
}
