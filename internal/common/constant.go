package common

// AccessTokenHeaderName is the gRPC metadata key carrying the access token.
const AccessTokenHeaderName = "access_token"

// Bounds for a single time-log entry, in minutes.
const (
	MinLogMinutes = 1
	MaxLogMinutes = 24 * 60
)
