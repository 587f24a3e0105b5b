// Package config loads application configuration from the environment.
// A .env file is read once at startup; required keys cause a fatal exit so
// a misconfigured deployment fails fast instead of half-working.
package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every value the service reads from its environment.
type Config struct {
	DatabaseURL string
	Port        string

	// BaseURL is the externally visible origin used when building
	// onboarding and upload links sent by email.
	BaseURL string

	// Token validity windows. Defaults follow the documented contract:
	// 3 days for profile-completion links, 7 days for document uploads.
	ProfileTokenTTL  time.Duration
	DocumentTokenTTL time.Duration

	// Directory where uploaded candidate documents are stored.
	UploadDir string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
}

var instance *Config
var once sync.Once

// Get returns the process-wide configuration, loading it on first call.
func Get() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %v", err)
		}

		instance = &Config{
			DatabaseURL:      getEnv("DATABASE_URL", ""),
			Port:             getEnv("PORT", "8080"),
			BaseURL:          getEnv("BASE_URL", "http://localhost:8080"),
			ProfileTokenTTL:  getEnvAsDuration("PROFILE_TOKEN_TTL", 72*time.Hour),
			DocumentTokenTTL: getEnvAsDuration("DOCUMENT_TOKEN_TTL", 168*time.Hour),
			UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
			SMTPHost:         getEnv("SMTP_HOST", ""),
			SMTPPort:         getEnvAsInt("SMTP_PORT", 587),
			SMTPUser:         getEnv("SMTP_USER", ""),
			SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
			MailFrom:         getEnv("MAIL_FROM", "hr@example.com"),
		}

		if instance.DatabaseURL == "" {
			logrus.Fatal("DATABASE_URL environment variable not set")
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(name, "")
	if val, err := time.ParseDuration(valStr); err == nil {
		return val
	}

	return defaultVal
}
