package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "BACKEND_URL", "BACKEND_TIMEOUT", "DISPLAY_TIMEZONE", "ALLOWED_ORIGINS", "COOKIE_SECURE", "RABBITMQ_URL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "http://localhost:5000/api", cfg.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.CookieSecure)
	assert.Empty(t, cfg.RabbitURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.club.test/api/")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("ALLOWED_ORIGINS", "https://admin.club.test, ,https://club.test")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := Load()

	assert.Equal(t, "https://api.club.test/api", cfg.BackendURL)
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	assert.Equal(t, []string{"https://admin.club.test", "https://club.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "soon")

	assert.Equal(t, 30*time.Second, Load().BackendTimeout)
}

func TestLocation_UnknownZoneIsUTC(t *testing.T) {
	cfg := &Config{DisplayTimezone: "Mars/Olympus_Mons"}

	assert.Equal(t, time.UTC, cfg.Location())
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "club_admin", DBSSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=club_admin sslmode=disable", cfg.DSN())
}
