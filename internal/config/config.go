package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	LogLevel string
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig contains the database connection settings. When URL is set a
// PostgreSQL connection is used; otherwise the service falls back to the
// sqlite file at Path.
type DatabaseConfig struct {
	URL             string
	Path            string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// StorageConfig locates the on-disk working directories for uploaded drawings
// and saved projects.
type StorageConfig struct {
	UploadDir      string
	ProjectDir     string
	MaxUploadBytes int64
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			":8080",
		),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			"",
		),
		Path:            firstNonEmpty(os.Getenv("DATABASE_PATH"), "database/materials.db"),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DB_MAX_IDLE_CONNS"), 2),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DB_MAX_OPEN_CONNS"), 10),
		ConnMaxLifetime: time.Duration(parseIntWithDefault(os.Getenv("DB_CONN_MAX_LIFETIME_MINUTES"), 30)) * time.Minute,
	}

	cfg.Storage = StorageConfig{
		UploadDir:      firstNonEmpty(os.Getenv("UPLOAD_DIR"), "uploads"),
		ProjectDir:     firstNonEmpty(os.Getenv("PROJECT_DIR"), "projects"),
		MaxUploadBytes: parseInt64WithDefault(os.Getenv("MAX_UPLOAD_BYTES"), 16<<20),
	}

	cfg.LogLevel = os.Getenv("LOG_LEVEL")

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}

	if cfg.Storage.MaxUploadBytes <= 0 {
		return Config{}, fmt.Errorf("max upload size must be positive")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseInt64WithDefault(value string, def int64) int64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}
