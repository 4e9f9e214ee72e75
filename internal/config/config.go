package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config содержит настройки приложения
type Config struct {
	Database DatabaseConfig
	LogLevel slog.Level
	// Persist - загружать снапшот при старте и сохранять при encerrarSistema
	Persist bool
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnectAttempts int
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GooseDialect - диалект миграций для выбранного драйвера
func (c *DatabaseConfig) GooseDialect() string {
	if c.Driver == DriverPostgres {
		return "postgres"
	}
	return "sqlite3"
}

// Load загружает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	driver := getEnv("DB_DRIVER", DriverSQLite)
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	defaultAttempts := "1"
	if driver == DriverPostgres {
		defaultAttempts = "30"
	}
	attempts, err := strconv.Atoi(getEnv("DB_CONNECT_ATTEMPTS", defaultAttempts))
	if err != nil || attempts < 1 {
		return nil, fmt.Errorf("invalid DB_CONNECT_ATTEMPTS: %q", os.Getenv("DB_CONNECT_ATTEMPTS"))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	persist, err := strconv.ParseBool(getEnv("WEPAYU_PERSIST", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEPAYU_PERSIST: %w", err)
	}

	return &Config{
		Database: DatabaseConfig{
			Driver:          driver,
			Path:            getEnv("DB_PATH", "wepayu.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "wepayu"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			ConnectAttempts: attempts,
		},
		LogLevel: level,
		Persist:  persist,
	}, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
