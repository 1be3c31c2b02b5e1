package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Tutoring content and state
	ContentPath   string // concept catalog JSON
	MasteryDBPath string // SQLite mastery database

	// Voice collaborator
	VoiceWebhookURL string // empty = log mode switches only

	// Curriculum order used by the learning path
	Curriculum []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		ContentPath:     getenvDefault("CONTENT_PATH", "shared-data/tutor_content.json"),
		MasteryDBPath:   getenvDefault("MASTERY_DB", "tutor_mastery.db"),
		VoiceWebhookURL: os.Getenv("VOICE_WEBHOOK_URL"),
		Curriculum:      splitList(getenvDefault("CURRICULUM", "variables,conditions,loops,functions")),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
