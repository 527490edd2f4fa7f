package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the application configuration.
type Config struct {
	DBPath   string // Path to the sqlite library database file
	MusicDir string // Root directory of the local music collection

	LogPath  string // Log file path; empty disables the file sink
	LogLevel string

	// Auto-discovery tuning. Both default to 20 per the discovery
	// contract: no stations below MinLibrarySize total tracks, no
	// station for a group of MinGroupSize or fewer members.
	MinLibrarySize int
	MinGroupSize   int

	// HistorySize is how many recently played tracks the player
	// refuses to repeat.
	HistorySize int
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override existing env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables and defaults.")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		DBPath:         getEnv("LOCALFM_DB_PATH", filepath.Join(home, ".localfm", "library.db")),
		MusicDir:       getEnv("LOCALFM_MUSIC_DIR", filepath.Join(home, "Music")),
		LogPath:        getEnv("LOCALFM_LOG_PATH", filepath.Join(home, ".localfm", "localfm.log")),
		LogLevel:       getEnv("LOCALFM_LOG_LEVEL", "info"),
		MinLibrarySize: getEnvInt("LOCALFM_MIN_LIBRARY_SIZE", 20),
		MinGroupSize:   getEnvInt("LOCALFM_MIN_GROUP_SIZE", 20),
		HistorySize:    getEnvInt("LOCALFM_HISTORY_SIZE", 10),
	}
}
