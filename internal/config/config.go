package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DBConfig struct {
	Driver string

	// sqlite
	Path string

	// postgres
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // minutes
}

type Config struct {
	DB       DBConfig
	HTTPAddr string
	LogLevel string
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local runs.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing .env is fine

	cfg := &Config{
		DB: DBConfig{
			Driver:          getEnv("DB_DRIVER", DriverSQLite),
			Path:            getEnv("DB_PATH", "meetpoint.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			User:            getEnv("DB_USER", "meetpoint"),
			Password:        getEnv("DB_PASSWORD", "meetpoint"),
			Name:            getEnv("DB_NAME", "meetpoint_db"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			Port:            getEnvInt("DB_PORT", 5432),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		},
		HTTPAddr: getEnv("HTTP_ADDR", "127.0.0.1:8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.DB.Driver {
	case DriverSQLite:
		if cfg.DB.Path == "" {
			return nil, fmt.Errorf("invalid DB config: DB_PATH must not be empty")
		}
	case DriverPostgres:
		if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
			return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	default:
		return nil, fmt.Errorf("invalid DB config: unknown driver %q", cfg.DB.Driver)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
