package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"jwt": map[string]any{
			"secretKey":      "",
			"accessTokenTtl": "15m",
		},
		"cookies": map[string]any{
			"expiredDay": 0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_SECRETKEY", want: "jwt.secretKey"},
		{envKey: "JWT_ACCESSTOKENTTL", want: "jwt.accessTokenTtl"},
		{envKey: "COOKIES_EXPIREDDAY", want: "cookies.expiredDay"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestCookiesConfigExpiry(t *testing.T) {
	tests := []struct {
		name string
		cfg  CookiesConfig
		want time.Duration
	}{
		{name: "days take precedence", cfg: CookiesConfig{ExpiredDay: 2, ExpiredTime: 5}, want: 48 * time.Hour},
		{name: "hours when no days", cfg: CookiesConfig{ExpiredTime: 5}, want: 5 * time.Hour},
		{name: "default one hour", cfg: CookiesConfig{}, want: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Expiry(); got != tt.want {
				t.Fatalf("Expiry() = %v, want %v", got, tt.want)
			}
		})
	}
}
