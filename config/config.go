package config

import (
	"os"

	"closetable-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens, read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "closetable_super_secret_2024"))

// Upload limits for restaurant/menu images.
const (
	MaxRestaurantImages = 5
	MaxFileSize         = 5 * 1024 * 1024 // 5MB
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init loads .env (if present) and refreshes the JWT secret.
func Init() {
	if err := godotenv.Load(); err == nil {
		logrus.Info("loaded environment from .env")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "closetable_super_secret_2024"))
}

// InitDB opens the store at dsn and migrates the schema. Tests pass
// ":memory:" to run against a throwaway database.
func InitDB(dsn string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.Review{},
		&models.Image{},
		&models.RevokedToken{},
	)
	if err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	logrus.Info("database connected and migrated")
}
