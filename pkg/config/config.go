package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string // optional: empty runs the pipeline without history storage
	CORSOrigins string

	GitHubAPIBase     string
	GitHubToken       string
	CodeforcesAPIBase string

	FetchTimeoutSeconds int
	LLMTimeoutSeconds   int
	MaxRecommendations  int

	OpenRouterAPIKey   string // optional: empty disables generative refinement
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		GitHubAPIBase:     os.Getenv("GITHUB_API_BASE"),
		GitHubToken:       os.Getenv("GITHUB_TOKEN"),
		CodeforcesAPIBase: os.Getenv("CODEFORCES_API_BASE"),

		FetchTimeoutSeconds: getEnvInt("FETCH_TIMEOUT_SECONDS", 8),
		LLMTimeoutSeconds:   getEnvInt("LLM_TIMEOUT_SECONDS", 20),
		MaxRecommendations:  getEnvInt("MAX_RECOMMENDATIONS", 6),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE"),
		OpenRouterModel:    os.Getenv("OPENROUTER_MODEL"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "devadvisor"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),
	}
	return cfg
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
