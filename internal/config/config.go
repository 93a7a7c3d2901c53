package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the server, loaded from the
// environment (optionally seeded from a .env file).
type Config struct {
	Port         string
	DatabasePath string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	// EnforceAssigneeMembership rejects task assignment to users that are
	// not members of the task's project.
	EnforceAssigneeMembership bool
}

// Load reads configuration from the environment. A missing .env file is fine.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Port:                      getEnv("PORT", ":8008"),
		DatabasePath:              getEnv("DATABASE_PATH", "workhub.db"),
		SMTPHost:                  getEnv("SMTP_HOST", "localhost"),
		SMTPPort:                  getEnvInt("SMTP_PORT", 587),
		SMTPUser:                  getEnv("SMTP_USER", ""),
		SMTPPass:                  getEnv("SMTP_PASSWORD", ""),
		MailFrom:                  getEnv("MAIL_FROM", "no-reply@workhub.local"),
		EnforceAssigneeMembership: getEnvBool("ENFORCE_ASSIGNEE_MEMBERSHIP", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
