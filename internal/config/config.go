package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string

	// OpenID promoted to admin on first sign-in.
	OwnerOpenID string

	RedisURL string

	// OAuth code exchange endpoints (the provider itself is external).
	OAuthTokenURL     string
	OAuthUserInfoURL  string
	OAuthClientID     string
	OAuthClientSecret string

	// Storage: "local" or "s3".
	StorageType    string
	StorageLocal   string
	StorageBaseURL string
	S3Bucket       string
	S3Region       string
	AWSAccessKey   string
	AWSSecretKey   string

	// When true, booking emails are checked for a resolvable domain.
	StrictEmailCheck bool
}

func Load() *Config {
	return &Config{
		DBUrl:      os.Getenv("DATABASE_URL"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		OwnerOpenID: os.Getenv("OWNER_OPEN_ID"),

		RedisURL: os.Getenv("REDIS_URL"),

		OAuthTokenURL:     os.Getenv("OAUTH_TOKEN_URL"),
		OAuthUserInfoURL:  os.Getenv("OAUTH_USERINFO_URL"),
		OAuthClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		OAuthClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),

		StorageType:    getEnv("STORAGE_TYPE", "local"),
		StorageLocal:   getEnv("STORAGE_LOCAL_PATH", "./uploads"),
		StorageBaseURL: os.Getenv("STORAGE_BASE_URL"),
		S3Bucket:       os.Getenv("AWS_S3_BUCKET"),
		S3Region:       getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey:   os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),

		StrictEmailCheck: strings.EqualFold(os.Getenv("STRICT_EMAIL_CHECK"), "true"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
