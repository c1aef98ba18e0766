package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	NATS     NATSConfig
	Catalog  CatalogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// DatabaseConfig holds PostgreSQL configuration. An empty URL means the store
// is not configured and the service runs in static-fallback mode.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SMTPConfig holds the transactional mail relay configuration
type SMTPConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromName  string
	Recipient string
}

// NATSConfig holds NATS configuration. An empty URL disables event publishing.
type NATSConfig struct {
	URL string
}

// CatalogConfig holds catalog listing defaults
type CatalogConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Load reads configuration from environment variables and returns a Config struct
func Load() (*Config, error) {
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "30s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")

	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM_NAME", "Mobili più")
	viper.SetDefault("SMTP_RECIPIENT", "info.mobilipiu@gmail.com")

	viper.SetDefault("NATS_URL", "")

	viper.SetDefault("CATALOG_DEFAULT_PAGE_SIZE", 12)
	viper.SetDefault("CATALOG_MAX_PAGE_SIZE", 100)

	readTimeout, err := time.ParseDuration(viper.GetString("SERVER_READ_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(viper.GetString("SERVER_WRITE_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	requestTimeout, err := time.ParseDuration(viper.GetString("SERVER_REQUEST_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_REQUEST_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(viper.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	allowedOriginsStr := viper.GetString("CORS_ALLOWED_ORIGINS")
	allowedOrigins := strings.Split(allowedOriginsStr, ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			AllowedOrigins:  allowedOrigins,
		},
		Database: DatabaseConfig{
			URL:             viper.GetString("DATABASE_URL"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		SMTP: SMTPConfig{
			Host:      viper.GetString("SMTP_HOST"),
			Port:      viper.GetString("SMTP_PORT"),
			Username:  viper.GetString("SMTP_USER"),
			Password:  viper.GetString("SMTP_PASSWORD"),
			FromName:  viper.GetString("SMTP_FROM_NAME"),
			Recipient: viper.GetString("SMTP_RECIPIENT"),
		},
		NATS: NATSConfig{
			URL: viper.GetString("NATS_URL"),
		},
		Catalog: CatalogConfig{
			DefaultPageSize: viper.GetInt("CATALOG_DEFAULT_PAGE_SIZE"),
			MaxPageSize:     viper.GetInt("CATALOG_MAX_PAGE_SIZE"),
		},
	}

	return config, nil
}

// StoreConfigured reports whether a Data Store connection string is present.
// When false the service serves reads from the embedded dataset and rejects writes.
func (c *Config) StoreConfigured() bool {
	return c.Database.URL != ""
}

// EventsConfigured reports whether a NATS URL is present
func (c *Config) EventsConfigured() bool {
	return c.NATS.URL != ""
}

// Configured reports whether the mail relay credentials are present
func (c *SMTPConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// Addr returns the SMTP host:port address
func (c *SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
