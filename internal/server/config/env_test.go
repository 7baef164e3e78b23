package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_ADDR", ":9091")
	t.Setenv("DATABASE_URL", "postgres://prod")
	t.Setenv("DATABASE_MAX_CONNS", "25")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("REFRESH_TOKEN_TTL", "72h")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("FRONTEND_URL", "https://domunity.bg,https://www.domunity.bg")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	expected := &Config{
		Env:                          "production",
		EndpointAddrGRPC:             ":9090",
		HTTPAddr:                     ":9091",
		DatabaseDSN:                  "postgres://prod",
		DatabaseMaxConns:             25,
		SecretKey:                    "0123456789abcdef0123456789abcdef",
		AccessTokenValidityDuration:  30 * time.Minute,
		RefreshTokenValidityDuration: 72 * time.Hour,
		BcryptCost:                   12,
		AllowedOrigins:               []string{"https://domunity.bg", "https://www.domunity.bg"},
		OTelEndpoint:                 "otel:4317",
	}
	assert.Empty(t, cmp.Diff(expected, c))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "PORT", "HTTP_ADDR", "DATABASE_URL", "DATABASE_MAX_CONNS", "JWT_SECRET",
		"ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "BCRYPT_COST", "FRONTEND_URL", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(k, "")
	}
}

func TestParseEnv_UnsetKeepsValues(t *testing.T) {
	clearEnv(t)

	c := &Config{}
	c.LoadDefaults()
	want := *c

	parseEnv(c)
	assert.Empty(t, cmp.Diff(&want, c))
}

func TestParseEnv_MalformedPanics(t *testing.T) {
	t.Setenv("DATABASE_MAX_CONNS", "many")
	require.Panics(t, func() { parseEnv(&Config{}) })
}
