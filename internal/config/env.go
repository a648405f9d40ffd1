package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds the process-level settings read from the environment.
type Env struct {
	Port          string
	StoreDriver   string
	DataDir       string
	AppConfigPath string
	GeminiAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
}

// LoadEnv reads .env (if present) and then the process environment.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return Env{
		Port:          normalizePort(firstNonEmpty(os.Getenv("PORT"), ":8080")),
		StoreDriver:   firstNonEmpty(strings.TrimSpace(os.Getenv("PROMPTCRAFT_STORE")), "file"),
		DataDir:       firstNonEmpty(strings.TrimSpace(os.Getenv("PROMPTCRAFT_DATA_DIR")), ".promptcraft"),
		AppConfigPath: firstNonEmpty(strings.TrimSpace(os.Getenv("PROMPTCRAFT_APP_CONFIG")), "config/app_config.json"),
		GeminiAPIKey:  firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_API_KEY")), strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))),
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
	}
}

// APIKey returns the credential for provider.
func (e Env) APIKey(provider string) string {
	if strings.EqualFold(provider, "openai") {
		return e.OpenAIAPIKey
	}
	return e.GeminiAPIKey
}

func normalizePort(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
