package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// AppConfig dibangun sekali di main lalu diteruskan ke komponen yang butuh.
type AppConfig struct {
	Port string

	JWTSecret      string
	AccessTokenTTL time.Duration

	DatabaseURL string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string
	AutoMigrate bool

	LogLevel         string
	CORSOrigins      []string
	BlacklistTTLDays int
	CleanupCron      string
	RequestTimeout   time.Duration
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() *AppConfig {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			logrus.Warn("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			logrus.Info("✅ .env file berhasil dimuat!")
		}
	} else {
		logrus.Info("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	cfg := &AppConfig{
		Port:             GetEnv("PORT", "3000"),
		JWTSecret:        GetEnv("JWT_SECRET"),
		AccessTokenTTL:   time.Duration(GetEnvInt("ACCESS_TOKEN_TTL_HOURS", 24)) * time.Hour,
		DatabaseURL:      GetEnv("DATABASE_URL"),
		DBUser:           GetEnv("DB_USER"),
		DBPassword:       GetEnv("DB_PASSWORD"),
		DBHost:           GetEnv("DB_HOST", "localhost"),
		DBPort:           GetEnv("DB_PORT", "5432"),
		DBName:           GetEnv("DB_NAME"),
		DBSSLMode:        GetEnv("DB_SSLMODE", "require"),
		AutoMigrate:      GetEnvBool("DB_AUTO_MIGRATE", false),
		LogLevel:         GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		BlacklistTTLDays: GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7),
		CleanupCron:      GetEnv("CLEANUP_CRON", "15 2 * * *"),
		RequestTimeout:   time.Duration(GetEnvInt("REQUEST_TIMEOUT_SECONDS", 0)) * time.Second,
	}

	if cfg.JWTSecret == "" {
		logrus.Error("❌ JWT_SECRET belum diset!")
	} else {
		logrus.Info("✅ JWT_SECRET berhasil dimuat.")
	}

	return cfg
}

// DSN: DATABASE_URL kalau ada, selain itu dirakit dari DB_*.
func (c *AppConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=gerejaku",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
