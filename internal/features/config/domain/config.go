package domain

// AppConfig represents the application configuration.
type AppConfig struct {
	Provider        string      `json:"provider"`
	ModelParams     ModelParams `json:"model_params"`
	ToastDurationMs int         `json:"toast_duration_ms"`
}

// ModelParams defines the parameters for the AI model.
type ModelParams struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// DefaultAppConfig is used when no config file exists.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Provider: "gemini",
		ModelParams: ModelParams{
			Model:       "gemini-2.5-pro",
			Temperature: 0.7,
		},
		ToastDurationMs: 3300,
	}
}
