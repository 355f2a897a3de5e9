package config

import (
	"os"
	"strings"
)

// AllowUnassignedLocation lets location-scoped records be written with an empty location id
// when the organization has no location yet. Off by default: such writes are rejected.
//
// Set via env:
// - ALLOW_UNASSIGNED_LOCATION=true
func AllowUnassignedLocation() bool {
	return boolFromEnv("ALLOW_UNASSIGNED_LOCATION")
}

// RateLimitEnabled turns on the Redis backed per-client request limiter.
//
// Set via env:
// - RATE_LIMIT_ENABLED=true
// - RATE_LIMIT_WINDOW_SECONDS=60
// - RATE_LIMIT_MAX_REQUESTS=600
func RateLimitEnabled() bool {
	return boolFromEnv("RATE_LIMIT_ENABLED")
}

func boolFromEnv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}
