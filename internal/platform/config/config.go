package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	StorageDriver   string
	DatabaseURL     string
	EnableDBCheck   bool
	MigrationsPath  string
	FrontendBaseURL string
	RateLimit       string

	// Business defaults
	InvoiceDueDays    int
	QuoteValidityDays int
	CertAlertDays     int
	AttendanceMinRows int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_DRIVER", StoragePostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "200-M")
	v.SetDefault("INVOICE_DUE_DAYS", 30)
	v.SetDefault("QUOTE_VALIDITY_DAYS", 30)
	v.SetDefault("CERT_ALERT_DAYS", 90)
	v.SetDefault("ATTENDANCE_MIN_ROWS", 10)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		StorageDriver:     strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		FrontendBaseURL:   v.GetString("FRONTEND_BASE_URL"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		InvoiceDueDays:    v.GetInt("INVOICE_DUE_DAYS"),
		QuoteValidityDays: v.GetInt("QUOTE_VALIDITY_DAYS"),
		CertAlertDays:     v.GetInt("CERT_ALERT_DAYS"),
		AttendanceMinRows: v.GetInt("ATTENDANCE_MIN_ROWS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.StorageDriver != StoragePostgres && cfg.StorageDriver != StorageMemory {
		log.Printf("Warning: unknown STORAGE_DRIVER %q. Defaulting to %s.\n", cfg.StorageDriver, StoragePostgres)
		cfg.StorageDriver = StoragePostgres
	}
	if cfg.StorageDriver == StoragePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.InvoiceDueDays <= 0 {
		log.Printf("Warning: invalid INVOICE_DUE_DAYS (%d). Defaulting to 30.\n", cfg.InvoiceDueDays)
		cfg.InvoiceDueDays = 30
	}
	if cfg.QuoteValidityDays <= 0 {
		log.Printf("Warning: invalid QUOTE_VALIDITY_DAYS (%d). Defaulting to 30.\n", cfg.QuoteValidityDays)
		cfg.QuoteValidityDays = 30
	}
	if cfg.CertAlertDays < 0 {
		cfg.CertAlertDays = 90
	}
	if cfg.AttendanceMinRows <= 0 {
		cfg.AttendanceMinRows = 10
	}
	return cfg
}
