package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config with values from the environment. Unset
// variables leave the current value untouched; unparsable numeric values
// are ignored rather than fatal, matching the flag layer's leniency.
//
// Variables:
//
//	TEAMAUTH_ADDR            bind address
//	DATABASE_DSN             PostgreSQL DSN
//	JWT_SECRET               HMAC signing secret
//	ACCESS_TOKEN_TTL_MINUTES access token lifetime, minutes
//	PBKDF2_ITERATIONS        password hashing cost
//	CORS_ALLOWED_ORIGIN      Access-Control-Allow-Origin value
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("TEAMAUTH_ADDR"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("PBKDF2_ITERATIONS"); ok {
		if iterations, err := strconv.Atoi(v); err == nil && iterations > 0 {
			config.HashIterations = iterations
		}
	}
	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGIN"); ok {
		config.CORSAllowedOrigin = v
	}
}
