package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// DefaultSessionSecret is the fallback signing secret. It is deliberately the
// same weak literal the app has always shipped with; production deployments
// must override SESSION_SECRET. Startup logs a warning when it is in use.
const DefaultSessionSecret = "please-change-this-secret"

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DBDriver string `json:"db_driver"`
	DBPath   string `json:"db_path"`
	DBHost   string `json:"db_host"`
	DBPort   string `json:"db_port"`
	DBUser   string `json:"db_user"`
	DBPass   string `json:"db_password"`
	DBName   string `json:"db_name"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	SessionSecret string `json:"session_secret"`

	// Presentation
	TemplatesGlob string `json:"templates_glob"`
	StaticDir     string `json:"static_dir"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DBDriver: %s, DBPath: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, SessionSecret: [REDACTED]}",
		c.Port, c.Host, c.DBDriver, c.DBPath, c.DBName, c.DBUser, c.LogLevel)
}

// UsingDefaultSecret reports whether the weak fallback session secret is live.
func (c *Config) UsingDefaultSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

// LoadConfig reads the proper configuration from environment variables and returns a Config struct.
// Returns an error if any environment variable has an invalid format.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("PORT", "3000"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port:          port,
		Host:          GetEnvWithDefault("APP_HOST", ""),
		DBDriver:      GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBPath:        GetEnvWithDefault("DB_PATH", "data/database.sqlite"),
		DBHost:        GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:        GetEnvWithDefault("DB_PORT", "5432"),
		DBUser:        GetEnvWithDefault("DB_USER", "user"),
		DBPass:        GetEnvWithDefault("DB_PASSWORD", "password"),
		DBName:        GetEnvWithDefault("DB_NAME", "records"),
		LogLevel:      GetEnvWithDefault("LOG_LEVEL", "info"),
		SessionSecret: GetEnvWithDefault("SESSION_SECRET", DefaultSessionSecret),
		TemplatesGlob: GetEnvWithDefault("TEMPLATES_GLOB", "web/templates/*.html"),
		StaticDir:     GetEnvWithDefault("STATIC_DIR", "web/static"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
