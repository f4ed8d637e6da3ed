package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the application.
type Config struct {
	DatabaseURL string
	Bands       BandConfig
	Login       LoginConfig
}

// BandConfig defines the reserved job-title id bands. Ids at or above
// AdminMin mark HR administrators; ids in [AssignMin, AssignMax] are
// handed out to newly created occupations.
type BandConfig struct {
	AdminMin  int
	AssignMin int
	AssignMax int
}

// LoginConfig controls the interactive login loop.
type LoginConfig struct {
	MaxAttempts int
}

// Load reads configuration from the environment, applying defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Bands: BandConfig{
			AdminMin:  getEnvAsInt("JOB_BAND_ADMIN_MIN", 900),
			AssignMin: getEnvAsInt("JOB_BAND_ASSIGN_MIN", 300),
			AssignMax: getEnvAsInt("JOB_BAND_ASSIGN_MAX", 800),
		},
		Login: LoginConfig{
			MaxAttempts: getEnvAsInt("MAX_LOGIN_ATTEMPTS", 3),
		},
	}
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
