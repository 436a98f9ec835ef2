package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverSQLite  = "sqlite"
	DriverMongoDB = "mongodb"
)

// Config holds the application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains the HTTP listener and logging settings.
type ServerConfig struct {
	Port        int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel    string   `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error"`
	PrettyLogs  bool     `mapstructure:"pretty_logs"`
	CORSOrigins []string `mapstructure:"cors_origins" validate:"required,min=1"`
}

// DatabaseConfig selects the storage backend.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite mongodb"`
	URL    string `mapstructure:"url" validate:"required"`
	Name   string `mapstructure:"name" validate:"required_if=Driver mongodb"`
}

// AuthConfig contains token signing settings.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"required,gt=0"`
	Required  bool          `mapstructure:"required"`
}

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "TASKS"

// Load reads configuration from defaults, an optional YAML file and TASKS_* environment
// variables, in increasing order of precedence. An empty path searches ./config.yaml and
// ./config/config.yaml.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.pretty_logs", false)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.url", "./tasks.db")
	v.SetDefault("database.name", "tasks")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.required", true)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{
		"server.port", "server.log_level", "server.pretty_logs", "server.cors_origins",
		"database.driver", "database.url", "database.name",
		"auth.jwt_secret", "auth.token_ttl", "auth.required",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
