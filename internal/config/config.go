package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AnalyzeDelay  time.Duration
	JournalDelay  time.Duration
	Theme         string
	Notifications bool
	SeedDemo      bool
	LexiconPath   string
	LogFile       string
	ExportPath    string
	PostgresDSN   string
}

func New() *Config {
	_ = godotenv.Load()

	return &Config{
		AnalyzeDelay:  getDuration("MINDGUARD_ANALYZE_DELAY", time.Second),
		JournalDelay:  getDuration("MINDGUARD_JOURNAL_DELAY", 800*time.Millisecond),
		Theme:         strings.ToLower(strings.TrimSpace(getEnv("MINDGUARD_THEME", "dark"))),
		Notifications: getBool("MINDGUARD_NOTIFICATIONS", true),
		SeedDemo:      getBool("MINDGUARD_SEED_DEMO", true),
		LexiconPath:   getEnv("MINDGUARD_LEXICON", ""),
		LogFile:       getEnv("MINDGUARD_LOG_FILE", "mindguard.log"),
		ExportPath:    getEnv("MINDGUARD_EXPORT_PATH", "mindguard-export.json"),
		PostgresDSN:   getEnv("POSTGRES_DSN", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d < 0 {
		return defaultVal
	}
	return d
}

func getBool(key string, defaultVal bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return b
}
