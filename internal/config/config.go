package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	Environment string
	JWTSecret   string
	SandboxPort string
}

func Load() *Config {
	// .env es opcional; si no existe se leen las variables de entorno.
	_ = godotenv.Load(".env")

	return &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		Environment: getEnv("ENV", "development"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		SandboxPort: getEnv("SANDBOX_PORT", "8080"),
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

func (c *Config) SandboxAddr() string {
	return fmt.Sprintf(":%s", c.SandboxPort)
}
