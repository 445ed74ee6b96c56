package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	Host       string
	Port       string
	StaticDir  string
	PublicBase string
	Env        string

	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	SMTPFrom       string
	SMTPNotify     string
	MailTimeoutSec int

	AdminUser string
	AdminPass string

	SessionTTLMin int
	SessionMax    int
	RedisAddr     string
}

func Load() *Config {
	// .env is optional; plain environment variables win either way.
	_ = godotenv.Load()

	return &Config{
		DBPath:     getEnv("BOOKING_DB", "bookings.db"),
		Host:       getEnv("BOOKING_HOST", "127.0.0.1"),
		Port:       getEnv("BOOKING_PORT", "8000"),
		StaticDir:  getEnv("STATIC_DIR", "web"),
		PublicBase: getEnv("PUBLIC_BASE_URL", ""),
		Env:        getEnv("ENV", "development"),

		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
		SMTPFrom:       getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),
		SMTPNotify:     getEnv("SMTP_NOTIFY", ""),
		MailTimeoutSec: getEnvInt("SMTP_TIMEOUT_SEC", 15),

		AdminUser: getEnv("ADMIN_USER", ""),
		AdminPass: getEnv("ADMIN_PASS", ""),

		SessionTTLMin: getEnvInt("SESSION_TTL_MIN", 720),
		SessionMax:    getEnvInt("SESSION_MAX", 1000),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
