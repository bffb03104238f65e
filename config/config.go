package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Santo1607/AIVoteSystem/models"
)

// Config carries all process configuration. It is loaded once in main and
// passed into constructors; nothing reads the environment after Load.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Storage selects the entity store backend: "postgres" or "memory".
	// The memory backend is meant for demo runs and tests.
	Storage string

	// SeedDemoData creates the default admin, sample candidates and sample
	// voters on startup when true.
	SeedDemoData bool

	JWTSecret     []byte
	EncryptionKey [32]byte
}

func Load() (Config, error) {
	// A missing .env file is fine; variables may come from the real
	// environment (container deployments).
	_ = godotenv.Load(".env")

	cfg := Config{
		Port:       getenv("PORT", "8080"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "aivotesystem"),
		DBPort:     getenv("DB_PORT", "5432"),
		Storage:    getenv("STORAGE", "postgres"),
	}

	switch os.Getenv("SEED_DEMO_DATA") {
	case "", "1", "true", "yes":
		cfg.SeedDemoData = true
	}

	cfg.JWTSecret = []byte(os.Getenv("JWT_SECRET"))
	if len(cfg.JWTSecret) == 0 {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}

	key := os.Getenv("ENCRYPTION_KEY")
	if len(key) < 32 {
		return Config{}, fmt.Errorf("ENCRYPTION_KEY must be at least 32 bytes")
	}
	copy(cfg.EncryptionKey[:], key)

	return cfg, nil
}

// DSN assembles the postgres connection string from the DB_* variables.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// ConnectDatabase opens the postgres connection through gorm and runs the
// schema migrations for all three entity tables.
func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(&models.Voter{}, &models.Candidate{}, &models.Admin{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

func getenv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
