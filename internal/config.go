package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	Console ServerConfig  `mapstructure:"console"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

// APIConfig points the client at the BragBoard backend.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

// StorageConfig locates the SQLite file holding the persisted session.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	DefaultAPIBaseURL  = "http://127.0.0.1:8000"
	DefaultStoragePath = "bragboard.db"
	DefaultConsolePort = 3000
)

// DefaultConfig mirrors what an empty config.yml yields.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{Env: "development"},
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
			Timeout: 15 * time.Second,
		},
		Console: ServerConfig{
			Port:              DefaultConsolePort,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			IdleTimeout:       60 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
		Storage: StorageConfig{Path: DefaultStoragePath},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// LoadConfigFromEnv builds a Config from BRAGBOARD_* variables on top of
// the defaults.
func LoadConfigFromEnv() *Config {
	cfg := DefaultConfig()

	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.API.BaseURL = getEnv("BRAGBOARD_API_BASE_URL", cfg.API.BaseURL)
	cfg.API.Timeout = getEnvAsDuration("BRAGBOARD_API_TIMEOUT", cfg.API.Timeout)
	cfg.Console.Port = getEnvAsInt("BRAGBOARD_CONSOLE_PORT", cfg.Console.Port)
	cfg.Storage.Path = getEnv("BRAGBOARD_STORAGE_PATH", cfg.Storage.Path)
	cfg.Logging.Level = getEnv("BRAGBOARD_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("BRAGBOARD_LOG_FORMAT", cfg.Logging.Format)

	return cfg
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.API.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("api config: %v", err))
	}

	if err := c.Console.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("console config: %v", err))
	}

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("storage config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *APIConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %s: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url %s must be http or https", c.BaseURL)
	}
	if c.Timeout < 0 {
		return errors.New("timeout cannot be negative")
	}
	return nil
}

func (c *ServerConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *StorageConfig) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return errors.New("path is required")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}
