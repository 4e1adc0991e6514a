package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the fetch and analyze tools
type Config struct {
	Keyword        string        // player name substring to search for
	Season         string        // season identifier, e.g. "s9"
	Platform       string        // "crossplay", "steam", "psn", "xbox"
	BaseURL        string        // leaderboard API host
	OutputDir      string        // where snapshots are written and read
	RequestTimeout time.Duration // per-request timeout for API calls
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		Keyword:        "sangwoo",
		Season:         "s9",
		Platform:       "crossplay",
		BaseURL:        "https://api.the-finals-leaderboard.com",
		OutputDir:      ".",
		RequestTimeout: 30 * time.Second,
	}
}

// Load returns the defaults overridden by FINALS_* variables from an
// optional .env file or the process environment
func Load() Config {
	cfg := DefaultConfig()

	if err := godotenv.Load(); err == nil {
		log.Println("📄 Loaded settings from .env")
	}

	if v := os.Getenv("FINALS_KEYWORD"); v != "" {
		cfg.Keyword = v
	}
	if v := os.Getenv("FINALS_SEASON"); v != "" {
		cfg.Season = v
	}
	if v := os.Getenv("FINALS_PLATFORM"); v != "" {
		cfg.Platform = v
	}
	if v := os.Getenv("FINALS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FINALS_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	return cfg
}
