// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultDevTokenTTL = 24 * time.Hour

// keys lists every setting with its default. Viper only binds environment variables for known keys.
var keys = map[string]any{
	"GRPC_ADDR":                   ":8080",
	"DATABASE_URL":                "",
	"JWT_PUBLIC_KEY":              "",
	"JWT_PRIVATE_KEY":             "",
	"JWT_ISSUER":                  "org-access-idp",
	"JWT_AUDIENCE":                "org-access-api",
	"DEV_TOKEN_TTL":               "24h",
	"AUTO_MIGRATE":                false,
	"LOG_LEVEL":                   "info",
	"LOG_FORMAT":                  "text",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
	"OTEL_EXPORTER_OTLP_INSECURE": false,
	"OTEL_SERVICE_NAME":           "org-access-control",
	"APP_ENV":                     "",
	"AUTH_DISABLED":               false,
}

// Config holds application configuration loaded from the environment.
type Config struct {
	// GRPCAddr is the address the gRPC server listens on (e.g. :8080).
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// DatabaseURL is the Postgres DSN.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// JWTPublicKey is the identity provider's PEM public key (RSA or ECDSA) or a path to it.
	JWTPublicKey string `mapstructure:"JWT_PUBLIC_KEY"`
	// JWTPrivateKey is only read by the seed command to mint development tokens.
	JWTPrivateKey string `mapstructure:"JWT_PRIVATE_KEY"`
	JWTIssuer     string `mapstructure:"JWT_ISSUER"`
	JWTAudience   string `mapstructure:"JWT_AUDIENCE"`
	// DevTokenTTLRaw is the lifetime of seeded development tokens (e.g. "24h").
	DevTokenTTLRaw string `mapstructure:"DEV_TOKEN_TTL"`
	// AutoMigrate runs migrations up when the server starts.
	AutoMigrate bool   `mapstructure:"AUTO_MIGRATE"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFormat   string `mapstructure:"LOG_FORMAT"`

	// OTLPEndpoint is the OTLP gRPC collector. Empty disables export.
	OTLPEndpoint    string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure    bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	OTELServiceName string `mapstructure:"OTEL_SERVICE_NAME"`

	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
	// AuthDisabled trusts x-user-id / x-user-email metadata instead of a bearer token. Development only;
	// rejected when Env is production.
	AuthDisabled bool `mapstructure:"AUTH_DISABLED"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()
	for k, def := range keys {
		v.SetDefault(k, def)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.GRPCAddr) == "" {
		return nil, errors.New("config: GRPC_ADDR must be set")
	}
	if cfg.AuthDisabled && cfg.IsProduction() {
		return nil, errors.New("config: AUTH_DISABLED must not be true when APP_ENV=production")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.LogFormat)) {
	case "text", "json":
	default:
		return nil, errors.New("config: LOG_FORMAT must be text or json")
	}
	return &cfg, nil
}

// ValidateServer checks the settings the gRPC server cannot start without.
func (c *Config) ValidateServer() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("config: DATABASE_URL must be set")
	}
	if !c.AuthDisabled && strings.TrimSpace(c.JWTPublicKey) == "" {
		return errors.New("config: JWT_PUBLIC_KEY must be set unless AUTH_DISABLED=true")
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "production")
}

// DevTokenTTL parses DEV_TOKEN_TTL. Returns 24h if unset or invalid.
func (c *Config) DevTokenTTL() time.Duration {
	d, err := time.ParseDuration(c.DevTokenTTLRaw)
	if err != nil || d <= 0 {
		return defaultDevTokenTTL
	}
	return d
}
