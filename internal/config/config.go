package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPAddr     string
	GRPCAddr     string
	Environment  string
	LogLevel     string
	ExposeErrors bool // forward raw error text in API 500 responses
	CORSOrigins  []string
	Database     Database
}

type Database struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; it never overrides variables that
// are already set. A .env that exists but cannot be read or parsed is an
// error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		GRPCAddr:    getEnv("GRPC_ADDR", ":50051"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.ExposeErrors, err = getEnvBool("API_EXPOSE_ERRORS", false); err != nil {
		return nil, err
	}

	cfg.Database.Driver = strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))
	if cfg.Database.MaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 50); err != nil {
		return nil, err
	}
	if cfg.Database.MaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", 25); err != nil {
		return nil, err
	}
	if cfg.Database.ConnMaxLifetime, err = getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute); err != nil {
		return nil, err
	}

	switch cfg.Database.Driver {
	case DriverMySQL:
		cfg.Database.DSN, err = mysqlDSN()
	case DriverPostgres:
		cfg.Database.DSN = getEnv("POSTGRES_DSN", "host=localhost user=inventory password=inventory dbname=inventory port=5432 sslmode=disable")
	case DriverSQLite:
		cfg.Database.DSN = getEnv("SQLITE_PATH", "inventory.db?_foreign_keys=on")
	default:
		err = fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// mysqlDSN returns MYSQL_DSN when set, otherwise assembles one from the
// DB_* variables. parseTime is always enabled since timestamps are scanned
// into time.Time.
func mysqlDSN() (string, error) {
	if raw := os.Getenv("MYSQL_DSN"); raw != "" {
		mc, err := mysqldrv.ParseDSN(raw)
		if err != nil {
			return "", fmt.Errorf("parse MYSQL_DSN: %w", err)
		}
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	}

	mc := mysqldrv.NewConfig()
	mc.User = getEnv("DB_USER", "root")
	mc.Passwd = getEnv("DB_PASSWORD", "root")
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "3306"))
	mc.DBName = getEnv("DB_NAME", "inventory")
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}

	return mc.FormatDSN(), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
