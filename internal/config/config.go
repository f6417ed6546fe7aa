package config

import "fmt"

// Config holds all application configuration.
// It is constructed once at process start and passed explicitly to the
// components that need it; there are no package-level config globals.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	SMTP     SMTPConfig     `mapstructure:"smtp"     validate:"required"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins is the CORS allowlist for browser clients.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains the connection parameters for the Postgres store.
// Either URL is set directly, or it is assembled from the individual fields.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"gte=0,lt=65536"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// ConnectionURL returns the pgx connection URL, preferring an explicit URL
// over the individual host/port/credential fields.
func (c DatabaseConfig) ConnectionURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// AuthConfig contains the token signing settings.
type AuthConfig struct {
	// JWTSecret signs bearer tokens. A minimum length is enforced so
	// HMAC-SHA256 is not run with a trivially guessable key.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes bounds how long an issued token is accepted.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// SMTPConfig contains the outbound mail relay settings.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"gte=0,lt=65536"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}
