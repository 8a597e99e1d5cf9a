package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the server:
//
//	ADDRESS                      HTTP bind address (":8000")
//	DATABASE_DSN                 PostgreSQL DSN
//	SECRET_KEY                   JWT HMAC secret (required)
//	ALGORITHM                    JWT signing algorithm (HS256)
//	ACCESS_TOKEN_EXPIRE_MINUTES  token TTL in minutes (1440)
//	ALLOWED_ORIGINS              comma-separated CORS origins
//	LOGIN_RATE_PER_MINUTE        login attempts allowed per minute per IP
//	LOGIN_RATE_BURST             login attempt burst per IP
//
// A .env file in the working directory is loaded first when present,
// without overriding variables already set in the environment.
func parseEnv(config *Config) {
	// missing .env is not an error
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ALGORITHM"); ok {
		config.SigningAlgorithm = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_EXPIRE_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		config.AllowedOrigins = splitOrigins(v)
	}
	if v, ok := os.LookupEnv("LOGIN_RATE_PER_MINUTE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.LoginRatePerMinute = n
		}
	}
	if v, ok := os.LookupEnv("LOGIN_RATE_BURST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.LoginRateBurst = n
		}
	}
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
