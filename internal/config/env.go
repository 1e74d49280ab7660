package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// EnvBaseURL overrides site.base_url, for deploying the same configuration under a
// different path.
const EnvBaseURL = "DOCNAV_BASE_URL"

// envFiles are looked up in the working directory and next to the configuration file.
var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads the first readable env file from each location. Variables already
// present in the process environment are never overridden.
func loadEnvFiles(configDir string) {
	dirs := []string{"."}
	if abs, err := filepath.Abs(configDir); err == nil {
		if cwd, err := os.Getwd(); err != nil || cwd != abs {
			dirs = append(dirs, configDir)
		}
	}
	for _, dir := range dirs {
		for _, name := range envFiles {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := godotenv.Load(p); err != nil {
				slog.Warn("Failed to load env file", logfields.File(p), logfields.Error(err))
				continue
			}
			slog.Debug("Loaded environment variables", logfields.File(p))
			break
		}
	}
}

func applyEnvOverrides(doc *Document) {
	if v, ok := os.LookupEnv(EnvBaseURL); ok && v != "" {
		doc.Site.BaseURL = v
	}
}
