package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/galacticquest/internal/flagx"
	"github.com/dmitrijs2005/galacticquest/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// use timex.Duration so both "30s" and integer nanoseconds are accepted.
// Pointer fields tell an explicit false or zero apart from an absent key.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	Storage                      string         `json:"storage"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	RedisAddr                    string         `json:"redis_addr"`
	LeaderboardCacheTTL          timex.Duration `json:"leaderboard_cache_ttl"`
	LogFormat                    string         `json:"log_format"`
	TracingEnabled               *bool          `json:"tracing_enabled"`
	TracingEndpoint              string         `json:"tracing_endpoint"`
	ProgressionMaxAttempts       int            `json:"progression_max_attempts"`
}

// parseJson overlays values from the JSON file named by -c or -config onto
// config. Keys that are absent or empty keep the current value. An
// unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.Storage, c.Storage)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration > 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.RedisAddr, c.RedisAddr)
	if c.LeaderboardCacheTTL.Duration > 0 {
		config.LeaderboardCacheTTL = c.LeaderboardCacheTTL.Duration
	}
	setString(&config.LogFormat, c.LogFormat)
	if c.TracingEnabled != nil {
		config.TracingEnabled = *c.TracingEnabled
	}
	setString(&config.TracingEndpoint, c.TracingEndpoint)
	if c.ProgressionMaxAttempts > 0 {
		config.ProgressionMaxAttempts = c.ProgressionMaxAttempts
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
