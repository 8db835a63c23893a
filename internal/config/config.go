package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the CLI.
type Config struct {
	DatabasePath       string
	WebhookURL         string
	MotivationInterval time.Duration
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		DatabasePath:       strings.TrimSpace(os.Getenv("MISSAO_DB")),
		WebhookURL:         strings.TrimSpace(os.Getenv("MISSAO_WEBHOOK_URL")),
		MotivationInterval: parseMinutes(strings.TrimSpace(os.Getenv("MISSAO_MOTIVATION_INTERVAL_MINUTES"))),
	}

	if cfg.DatabasePath == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			cfg.DatabasePath = filepath.Join(homeDir, ".missao", "missao.db")
		} else {
			cfg.DatabasePath = "missao.db"
		}
	}

	if cfg.MotivationInterval == 0 {
		cfg.MotivationInterval = 30 * time.Minute
	}

	return cfg
}

func parseMinutes(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}
