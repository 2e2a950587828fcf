package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port      string `yaml:"port" env:"SERVER_PORT"`
		Mode      string `yaml:"mode" env:"SERVER_MODE"`
		PublicDir string `yaml:"public_dir" env:"SERVER_PUBLIC_DIR"`
		// ShutdownTimeout bounds how long in-flight requests may run after a stop signal
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	// Database holds connection parameters only; pool bounds are fixed in package db.
	Database struct {
		Host        string `yaml:"host" env:"DB_HOST"`
		Port        string `yaml:"port" env:"DB_PORT"`
		ServiceName string `yaml:"service_name" env:"DB_SERVICE_NAME"`
		User        string `yaml:"user" env:"DB_USER"`
		Password    string `yaml:"password" env:"DB_PASSWORD"`
		SSLMode     string `yaml:"sslmode" env:"DB_SSLMODE"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	// EnvOverrides lists the environment variables that replaced file or default values
	EnvOverrides []string `yaml:"-"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional, environment variables alone are enough.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applied, err := applyEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}
	config.EnvOverrides = applied

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.PublicDir = "public"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.ServiceName = "prison"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.SSLMode = "disable"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Database.Host) == "" {
		return fmt.Errorf("database host is required")
	}

	if strings.TrimSpace(config.Database.ServiceName) == "" {
		return fmt.Errorf("database service name is required")
	}

	if strings.TrimSpace(config.Database.User) == "" {
		return fmt.Errorf("database user is required")
	}

	if _, err := strconv.ParseUint(config.Database.Port, 10, 16); err != nil {
		return fmt.Errorf("invalid database port %q: %w", config.Database.Port, err)
	}

	if _, err := strconv.ParseUint(config.Server.Port, 10, 16); err != nil {
		return fmt.Errorf("invalid server port %q: %w", config.Server.Port, err)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format %q", config.Logging.Format)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     "/" + c.Database.ServiceName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return dsn.String()
}
