package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// AWS configuration
	AWSRegion      string `yaml:"aws_region"`
	ArticlesTable  string `yaml:"articles_table"`
	ActorsTable    string `yaml:"actors_table"`
	TagsTable      string `yaml:"tags_table"`
	LocationsTable string `yaml:"locations_table"`
	URLIndexName   string `yaml:"url_index_name"`

	// Authentication
	AuthEnabled bool     `yaml:"auth_enabled"`
	JWTSecret   string   `yaml:"jwt_secret"`
	JWTIssuer   string   `yaml:"jwt_issuer"`
	JWTTTL      string   `yaml:"jwt_ttl"`
	AdminEmails []string `yaml:"admin_emails"`

	// HTTP
	FrontendOrigin string `yaml:"frontend_origin"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// LoadConfig loads configuration from environment variables, with an
// optional YAML file (CONFIG_FILE) applied first so env vars win.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:  ":8080",
		Environment:    "development",
		AWSRegion:      "us-east-1",
		ArticlesTable:  "Articles",
		ActorsTable:    "Actors",
		TagsTable:      "Tags",
		LocationsTable: "Locations",
		URLIndexName:   "url-index",
		JWTIssuer:      "ecovista-backend",
		JWTTTL:         "15m",
		FrontendOrigin: "http://localhost:5173",
		LogLevel:       "info",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.AWSRegion = getEnv("AWS_REGION", c.AWSRegion)
	c.ArticlesTable = getEnv("ARTICLES_TABLE", c.ArticlesTable)
	c.ActorsTable = getEnv("ACTORS_TABLE", c.ActorsTable)
	c.TagsTable = getEnv("TAGS_TABLE", c.TagsTable)
	c.LocationsTable = getEnv("LOCATIONS_TABLE", c.LocationsTable)
	c.URLIndexName = getEnv("URL_INDEX_NAME", c.URLIndexName)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.JWTIssuer = getEnv("JWT_ISSUER", c.JWTIssuer)
	c.JWTTTL = getEnv("JWT_TTL", c.JWTTTL)
	c.FrontendOrigin = getEnv("FRONTEND_URL", c.FrontendOrigin)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	// Auth is enforced in production unless explicitly overridden
	c.AuthEnabled = getEnvBool("AUTH_ENABLED", c.AuthEnabled || c.IsProduction())

	if emails := os.Getenv("ADMIN_EMAILS"); emails != "" {
		c.AdminEmails = splitAndTrim(emails)
	}
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if _, err := time.ParseDuration(c.JWTTTL); err != nil {
		return fmt.Errorf("invalid JWT_TTL %q: %w", c.JWTTTL, err)
	}
	return nil
}

// JWTTTLDuration returns the token lifetime as a time.Duration
func (c *Config) JWTTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
