package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig lists the environment variables understood by the server. Unset
// variables leave the corresponding Config field untouched.
type envConfig struct {
	Env              string        `env:"APP_ENV"`
	Port             string        `env:"PORT"`
	HTTPAddr         string        `env:"HTTP_ADDR"`
	DatabaseURL      string        `env:"DATABASE_URL"`
	DatabaseMaxConns int           `env:"DATABASE_MAX_CONNS"`
	JWTSecret        string        `env:"JWT_SECRET"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL"`
	BcryptCost       int           `env:"BCRYPT_COST"`
	FrontendURL      []string      `env:"FRONTEND_URL" envSeparator:","`
	OTelEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// parseEnv overlays environment variables onto config. PORT sets the gRPC
// listen port on all interfaces. Malformed values panic.
func parseEnv(config *Config) {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	setString(&config.Env, e.Env)
	if e.Port != "" {
		config.EndpointAddrGRPC = ":" + e.Port
	}
	setString(&config.HTTPAddr, e.HTTPAddr)
	setString(&config.DatabaseDSN, e.DatabaseURL)
	if e.DatabaseMaxConns > 0 {
		config.DatabaseMaxConns = e.DatabaseMaxConns
	}
	setString(&config.SecretKey, e.JWTSecret)
	if e.AccessTokenTTL > 0 {
		config.AccessTokenValidityDuration = e.AccessTokenTTL
	}
	if e.RefreshTokenTTL > 0 {
		config.RefreshTokenValidityDuration = e.RefreshTokenTTL
	}
	if e.BcryptCost > 0 {
		config.BcryptCost = e.BcryptCost
	}
	if len(e.FrontendURL) > 0 {
		config.AllowedOrigins = e.FrontendURL
	}
	setString(&config.OTelEndpoint, e.OTelEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
