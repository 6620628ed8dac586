package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"record-tracker/internal/config"
	"record-tracker/internal/database"
	"record-tracker/internal/services"
)

// Creates an administrator account from the command line:
//
//	go run ./scripts "<Name>" "<email@example.com>" "<password>"
//
// This is the only way besides the first-run seed to obtain admin privilege;
// the web registration form always creates regular users.
func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, `usage: go run ./scripts "<Name>" "<email@example.com>" "<password>"`)
		os.Exit(2)
	}
	name, email, password := os.Args[1], os.Args[2], os.Args[3]

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

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
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		fmt.Fprintf(os.Stderr, "failed to migrate schema: %v\n", err)
		os.Exit(1)
	}

	admin, err := services.NewUserService(db).CreateAdmin(name, email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin created: %s (id=%d)\n", admin.Email, admin.ID)
}
