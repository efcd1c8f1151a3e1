package config

import (
	"fmt"
	"strconv"
	"time"

	"employee-api/internal/infrastructure/database"
)

// LoadDatabaseConfig đọc Postgres settings (DB_*) cho STORE_DRIVER=postgres.
// Giá trị sai định dạng là lỗi, không fallback về default.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	p := envParser{}

	cfg := &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              p.getInt("DB_PORT", 5432),
		Username:          getEnv("DB_USER", "postgres"),
		Password:          getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "employees"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(p.getInt("DB_MAX_CONNECTIONS", 10)),
		MinConns:          int32(p.getInt("DB_MIN_CONNECTIONS", 2)),
		MaxConnLifetime:   p.getDuration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   p.getDuration("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: p.getDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MaxRetries:        p.getInt("DB_MAX_RETRIES", 5),
		RetryDelay:        p.getDuration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout:    p.getDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}
	if p.err != nil {
		return nil, p.err
	}

	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}

// envParser giữ lỗi parse đầu tiên
type envParser struct {
	err error
}

func (p *envParser) getInt(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" || p.err != nil {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return def
	}
	return v
}

func (p *envParser) getDuration(key string, def time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" || p.err != nil {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
		return def
	}
	return v
}
