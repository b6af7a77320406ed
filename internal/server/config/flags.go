package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/flagx"
)

var serverFlags = []string{
	"-a", "-l", "-m", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e",
	"-redis", "-leaderboard-ttl", "-log-format", "-tracing", "-otlp-endpoint", "-attempts",
}

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-l string   HTTP bind address (e.g., ":8001")
//	-m string   storage backend: postgres | memory
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-u, -p, -b, -g, -e  S3 user, password, bucket, region, endpoint
//	-redis string            Redis address for the leaderboard cache
//	-leaderboard-ttl duration
//	-log-format string       json | zap
//	-tracing bool
//	-otlp-endpoint string    OTLP/HTTP collector, host:port
//	-attempts int            progression retry bound
//
// Args are first filtered with flagx.FilterArgs so flags meant for other
// components do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "l", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.Storage, "m", config.Storage, "storage backend (postgres|memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.RedisAddr, "redis", config.RedisAddr, "redis address for the leaderboard cache")
	fs.DurationVar(&config.LeaderboardCacheTTL, "leaderboard-ttl", config.LeaderboardCacheTTL, "leaderboard cache ttl")
	fs.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format (json|zap)")
	fs.BoolVar(&config.TracingEnabled, "tracing", config.TracingEnabled, "enable tracing")
	fs.StringVar(&config.TracingEndpoint, "otlp-endpoint", config.TracingEndpoint, "OTLP/HTTP endpoint")
	fs.IntVar(&config.ProgressionMaxAttempts, "attempts", config.ProgressionMaxAttempts, "max attempts when logging time")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
}
