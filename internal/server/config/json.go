package config

import (
	"encoding/json"
	"os"

	"github.com/domunity/backend/internal/flagx"
	"github.com/domunity/backend/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept both Go duration strings ("15m") and integer nanoseconds.
type JsonConfig struct {
	Env                          string         `json:"env"`
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	HTTPAddr                     string         `json:"http_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	DatabaseMaxConns             int            `json:"database_max_conns"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	BcryptCost                   int            `json:"bcrypt_cost"`
	AllowedOrigins               []string       `json:"allowed_origins"`
	OTelEndpoint                 string         `json:"otel_endpoint"`
}

// parseJson overlays the file named by -c/-config, if any. Fields absent
// from the file keep their current values. Unreadable files and invalid JSON
// panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.Env, c.Env)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	if c.DatabaseMaxConns > 0 {
		config.DatabaseMaxConns = c.DatabaseMaxConns
	}
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration > 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	setString(&config.OTelEndpoint, c.OTelEndpoint)
}
