package main

import (
	"fmt"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"record-tracker/internal/config"
	"record-tracker/internal/database"
	"record-tracker/internal/router"
)

func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	if configuration.UsingDefaultSecret() {
		log.Warn("SESSION_SECRET not set, using the built-in fallback; override it in production")
	}

	// Initialize database connection, schema and seed data
	db := setupDatabase(configuration)

	// Assemble the router with all routes, middleware and views
	engine := router.New(configuration, db)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(engine.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the database, migrates the schema and seeds the default
// admin. A failure here is the only fatal startup path.
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPass,
		Name:     conf.DBName,
		SSLMode:  "disable",
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))
	checkPanicErr(database.SeedDefaultAdmin(db))

	return db
}
