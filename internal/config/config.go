package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	LogFile        string
	LogLevel       string
	RateLimit      int
	AdminLocalOnly bool
}

func Load() Config {
	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(); err == nil {
		log.Printf("[config] loaded .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "digitalstore.db"
	} // sqlite file in project root
	logFile, ok := os.LookupEnv("LOG_FILE")
	if !ok {
		logFile = "./digitalstore.log"
	}
	level := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if level == "" {
		level = "info"
	}
	rate := 300
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT")); err == nil && v > 0 {
		rate = v
	}
	localOnly := true
	if v, err := strconv.ParseBool(os.Getenv("ADMIN_LOCAL_ONLY")); err == nil {
		localOnly = v
	}

	cfg := Config{
		Port:           port,
		DBDSN:          dsn,
		LogFile:        logFile,
		LogLevel:       level,
		RateLimit:      rate,
		AdminLocalOnly: localOnly,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s LOG_LEVEL=%s RATE_LIMIT=%d ADMIN_LOCAL_ONLY=%v",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.LogLevel, cfg.RateLimit, cfg.AdminLocalOnly)
	return cfg
}
