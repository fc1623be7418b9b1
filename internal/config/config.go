package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	PGHost    string
	PGPort    string
	PGDB      string
	PGUser    string
	PGPass    string
	PGSSLMode string

	RedisAddr string
	RedisDB   int

	GCSBucket     string
	GCSUploadPath string

	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		PGHost:    getenv("PG_HOST", "postgres"),
		PGPort:    getenv("PG_PORT", "5432"),
		PGDB:      getenv("PG_DB", "petshop"),
		PGUser:    getenv("PG_USER", "petshop"),
		PGPass:    getenv("PG_PASS", "petshop"),
		PGSSLMode: getenv("PG_SSLMODE", "disable"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),

		GCSBucket:     getenv("GCS_BUCKET_NAME", ""),
		GCSUploadPath: getenv("GCS_UPLOAD_PATH", "weekly-baths/"),

		IdempTTLSecs: 300,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.PGHost == "" || c.PGPort == "" || c.PGDB == "" || c.PGUser == "" {
		return errors.New("missing Postgres config (PG_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.PGPort); err != nil {
		return fmt.Errorf("invalid PG_PORT %q: %w", c.PGPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.GCSBucket == "" {
		return errors.New("missing GCS_BUCKET_NAME")
	}
	return nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PGHost, c.PGPort, c.PGUser, c.PGPass, c.PGDB, c.PGSSLMode)
}
