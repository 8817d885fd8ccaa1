package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds application configuration loaded from environment variables and .env file.
type AppConfig struct {
	// Database config
	DBHost         string
	DBPort         int
	DBUser         string
	DBPass         string
	DBName         string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnMaxLife  time.Duration

	// Logging config
	LogLevel      string
	LogFile       string
	LogMaxSize    int // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool

	// HTTP config
	ServerPort     string
	GinMode        string
	RequestTimeout time.Duration

	// JWTSecret signs caller identity tokens. Empty disables token checks and
	// falls back to the X-User-ID header (development only).
	JWTSecret string

	// StatsMaxWeeks caps the number of weeks a range statistics request may span.
	StatsMaxWeeks int
}

// Cfg is the global application configuration instance.
var Cfg AppConfig

// LoadConfig loads application configuration from .env file and environment variables.
func LoadConfig() error {
	err := godotenv.Load()
	if err != nil {
		// Use standard log here since logger is not initialized yet
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	} else {
		log.Printf("[INFO] .env file loaded successfully")
	}

	Cfg.DBHost = getEnv("DB_HOST", "127.0.0.1")
	Cfg.DBPort = getEnvInt("DB_PORT", 3306)
	Cfg.DBUser = getEnv("DB_USER", "root")
	Cfg.DBPass = getEnv("DB_PASS", "")
	Cfg.DBName = getEnv("DB_NAME", "gbs")
	Cfg.DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 20)
	Cfg.DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 5)
	Cfg.DBConnMaxLife = time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME", 300)) * time.Second

	Cfg.LogLevel = getEnv("LOG_LEVEL", "INFO")
	Cfg.LogFile = getEnv("LOG_FILE", "/var/log/gbs/gbsorgapi.log")
	Cfg.LogMaxSize = getEnvInt("LOG_MAX_SIZE", 10)
	Cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 3)
	Cfg.LogMaxAge = getEnvInt("LOG_MAX_AGE", 28)
	Cfg.LogCompress = getEnvBool("LOG_COMPRESS", true)

	Cfg.ServerPort = getEnv("PORT", "8081")
	Cfg.GinMode = getEnv("GIN_MODE", "release")
	Cfg.RequestTimeout = time.Duration(getEnvInt("REQUEST_TIMEOUT", 30)) * time.Second

	Cfg.JWTSecret = getEnv("JWT_SECRET", "")
	Cfg.StatsMaxWeeks = getEnvInt("STATS_MAX_WEEKS", 104)

	log.Printf("[INFO] Config loaded - DB: %s@%s:%d/%s, LogLevel: %s, Port: %s",
		Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName, Cfg.LogLevel, Cfg.ServerPort)
	if Cfg.JWTSecret == "" {
		log.Printf("[WARN] JWT_SECRET is empty, caller identity is read from X-User-ID header")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
