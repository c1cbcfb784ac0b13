package main

import (
	"log"
	"os"

	"feature-prefs-be/internal/model"
	"feature-prefs-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate All Models
	models := []interface{}{
		&model.User{},
		&model.UserRefreshToken{},
		&model.Group{},
		&model.Feature{},
		// Carries the unique composite index on (user_id, feature_id) that
		// the toggle upsert and the survey full-replace depend on.
		&model.UserFeaturePreference{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Success: Database migration completed.")
}
