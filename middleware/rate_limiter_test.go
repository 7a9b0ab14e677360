package middleware

import (
	"testing"

	"carhive/config"
)

func TestNewIPLimiterUsesConfiguredBudget(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()

	config.AppConfig.MaxRequestsPerMin = 3
	limiter := newIPLimiter()
	if limiter.Burst() != 3 {
		t.Fatalf("limiter burst = %d; want 3", limiter.Burst())
	}
	for i := 0; i < 3; i++ {
		if !limiter.Allow() {
			t.Fatalf("request %d rejected within budget", i+1)
		}
	}
	if limiter.Allow() {
		t.Fatal("request beyond budget allowed")
	}
}

func TestNewIPLimiterDefaultBudget(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()

	config.AppConfig.MaxRequestsPerMin = 0
	limiter := newIPLimiter()
	if limiter.Burst() != 100 {
		t.Fatalf("limiter burst = %d; want default 100", limiter.Burst())
	}
}
