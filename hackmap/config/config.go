package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                   string
	GroqAPIKey             string
	GroqBaseURL            string
	GitHubAPIURL           string
	WalletConnectProjectID string
}

func LoadConfig() Config {
	// Best effort; system environment wins when no .env file exists.
	_ = godotenv.Load()

	return Config{
		Port:                   getEnv("PORT", "4000"),
		GroqAPIKey:             getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:            getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1/chat/completions"),
		GitHubAPIURL:           getEnv("GITHUB_API_URL", "https://api.github.com"),
		WalletConnectProjectID: getEnv("WALLETCONNECT_PROJECT_ID", ""),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
