// Package config reads server configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds the process-level settings. Narrative-generation
// settings live in the llm package's own config.
type Config struct {
	ListenAddr     string
	DataDir        string
	DBPath         string
	AllowedOrigins []string
}

// Load reads ONTRACK_* environment variables, falling back to
// development defaults.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr: ":8000",
		DataDir:    "./data",
		AllowedOrigins: []string{
			"http://127.0.0.1:5173",
			"http://localhost:5173",
		},
	}

	if v := os.Getenv("ONTRACK_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("ONTRACK_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("ONTRACK_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		cfg.AllowedOrigins = cfg.AllowedOrigins[:0]
		for _, o := range origins {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	cfg.DBPath = os.Getenv("ONTRACK_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = filepath.Join(home, ".ontrack", "ontrack.db")
	}
	return cfg, nil
}
