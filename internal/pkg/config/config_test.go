//go:build unit

package config_test

import (
	"testing"
	"time"

	"museum-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "test config is valid", mutate: func(*config.Config) {}},
		{name: "redis store", mutate: func(c *config.Config) { c.Verification.Store = config.VerificationStoreRedis }},
		{name: "bad release time", mutate: func(c *config.Config) { c.Release.Time = "5pm" }, wantErr: "PLATFORM_RELEASE_TIME"},
		{name: "zero window", mutate: func(c *config.Config) { c.Release.Window = 0 }, wantErr: "PLATFORM_RELEASE_WINDOW"},
		{name: "unknown store", mutate: func(c *config.Config) { c.Verification.Store = "mongo" }, wantErr: "VERIFICATION_STORE"},
		{
			name: "inverted browser delays",
			mutate: func(c *config.Config) {
				c.Browser.MinDelay = time.Second
				c.Browser.MaxDelay = time.Millisecond
			},
			wantErr: "BROWSER_MAX_DELAY",
		},
		{name: "zero rate", mutate: func(c *config.Config) { c.Platform.RatePerSec = 0 }, wantErr: "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReleaseClock(t *testing.T) {
	h, m, err := config.ReleaseConfig{Time: " 09:30 "}.ReleaseClock()
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)

	loc := config.ReleaseConfig{TimeZone: "Asia/Shanghai", TimeZoneOffset: 28800}.Location()
	_, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 28800, offset)
}

func TestPlatformBaseURL(t *testing.T) {
	cfg := config.NewTestConfig()
	assert.True(t, cfg.MockPlatformEnabled())
	assert.Equal(t, "http://localhost:8889/mock", cfg.PlatformBaseURL())

	cfg.Platform.BaseURL = " https://booking.example.com/ "
	assert.False(t, cfg.MockPlatformEnabled())
	assert.Equal(t, "https://booking.example.com", cfg.PlatformBaseURL())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "museum")
	t.Setenv("PLATFORM_BOOKING_PATHS", "/a,/b")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Platform.BookingPaths)
	assert.False(t, cfg.Platform.ImpersonationEnabled)
	assert.False(t, cfg.Browser.StealthEnabled)
	assert.Equal(t, 30*time.Minute, cfg.Manual.Deadline)
	assert.Equal(t, "postgres://u:p@localhost:5432/museum?sslmode=disable&timezone=Asia/Shanghai", cfg.DB.BuildDSN())
}
