package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_RETENTION_DAYS", "")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 5*time.Minute, cfg.VendorCacheTTL)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "1h")
	t.Setenv("VENDOR_CACHE_TTL", "not-a-duration")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, 5*time.Minute, cfg.VendorCacheTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.MinioUseSSL)
}

func TestValidate(t *testing.T) {
	err := (&Config{}).Validate()
	assert.ErrorContains(t, err, "JWT_SECRET")
	assert.ErrorContains(t, err, "DB_PASSWORD")

	assert.NoError(t, (&Config{JWTSecret: "s", DBPassword: "p"}).Validate())
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "5432", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
