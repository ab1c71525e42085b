package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Identity IdentityConfig
	Cookie   CookieConfig
	Admin    AdminConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host             string        `envconfig:"DB_HOST" default:"localhost"`
	Port             string        `envconfig:"DB_PORT" default:"5432"`
	User             string        `envconfig:"DB_USER" required:"true"`
	Password         string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode          string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone         string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns         int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns         int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime  time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	StatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

// AllowsAnyOrigin reports whether the origin list is the wildcard.
func (c CORSConfig) AllowsAnyOrigin() bool {
	for _, o := range c.AllowOrigins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"168h"`
}

// IdentityConfig describes how identity tokens from the login provider are verified.
type IdentityConfig struct {
	Secret   string `envconfig:"IDENTITY_SECRET" required:"true"`
	Audience string `envconfig:"IDENTITY_AUDIENCE" required:"true"`
	Issuer   string `envconfig:"IDENTITY_ISSUER" default:""`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type AdminConfig struct {
	Emails []string `envconfig:"ADMIN_EMAILS" default:""`
}

// IsAdmin compares case-insensitively, emails are stored lowercased.
func (a AdminConfig) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, e := range a.Emails {
		if strings.ToLower(strings.TrimSpace(e)) == email {
			return true
		}
	}
	return false
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:             "localhost",
			Port:             "15433", // Test DB port
			User:             "test",
			Password:         "test",
			DBName:           "test_db",
			SSLMode:          "disable",
			TimeZone:         "UTC",
			MaxConns:         10,
			MinConns:         1,
			MaxConnLifetime:  time.Hour,
			StatementTimeout: 5 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-testing-only",
			Duration: "1h",
		},
		Identity: IdentityConfig{
			Secret:   "test-identity-secret",
			Audience: "room-reservation-test",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			Emails: []string{"admin@example.com"},
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}
