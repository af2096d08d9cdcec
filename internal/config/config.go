package config

import (
	"log"
	"os"
)

type Config struct {
	Port           string
	APIBaseURL     string
	SessionBackend string // "sqlite" | "redis"
	SessionDSN     string
	RedisAddr      string
	SessionSecret  string
	LogFile        string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	api := os.Getenv("API_BASE_URL")
	if api == "" {
		api = "http://localhost:8000/api" // local development backend
	}
	backend := os.Getenv("SESSION_BACKEND")
	if backend == "" {
		backend = "sqlite"
	}
	dsn := os.Getenv("SESSION_DSN")
	if dsn == "" {
		dsn = "threadline.db" // sqlite file in project root
	}
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	secret := os.Getenv("SESSION_SECRET")
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./threadline.log" // default log sink in project root
	}

	cfg := Config{
		Port:           port,
		APIBaseURL:     api,
		SessionBackend: backend,
		SessionDSN:     dsn,
		RedisAddr:      redisAddr,
		SessionSecret:  secret,
		LogFile:        logFile,
	}
	log.Printf("[config] PORT=%s API_BASE_URL=%s SESSION_BACKEND=%s SESSION_DSN=%s LOG_FILE=%s",
		cfg.Port, cfg.APIBaseURL, cfg.SessionBackend, cfg.SessionDSN, cfg.LogFile)
	return cfg
}
