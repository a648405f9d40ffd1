package application

import (
	"errors"
	"fmt"
	"strings"

	"promptcraft/backend/internal/config"
	"promptcraft/backend/internal/features/config/domain"
)

var ErrInvalidConfig = errors.New("invalid app config")

// ConfigService defines the interface for config management.
type ConfigService interface {
	GetConfig() (*domain.AppConfig, error)
	SaveConfig(config *domain.AppConfig) error
}

// configService validates changes before handing them to the file-backed
// AppConfigService.
type configService struct {
	appConfigService config.AppConfigService
}

// NewConfigService creates a new instance of configService.
func NewConfigService(appConfigService config.AppConfigService) ConfigService {
	return &configService{appConfigService: appConfigService}
}

func (s *configService) GetConfig() (*domain.AppConfig, error) {
	return s.appConfigService.LoadAppConfig()
}

// SaveConfig validates and persists the application configuration.
func (s *configService) SaveConfig(appConfig *domain.AppConfig) error {
	if err := Validate(appConfig); err != nil {
		return err
	}
	return s.appConfigService.SaveAppConfig(appConfig)
}

// Validate checks provider and model parameter ranges. An empty provider is
// normalised to gemini.
func Validate(c *domain.AppConfig) error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	switch c.Provider {
	case "":
		c.Provider = "gemini"
	case "gemini", "openai":
	default:
		return fmt.Errorf("%w: unsupported provider %q", ErrInvalidConfig, c.Provider)
	}
	if c.ModelParams.Temperature < 0 || c.ModelParams.Temperature > 2 {
		return fmt.Errorf("%w: temperature %v out of range [0, 2]", ErrInvalidConfig, c.ModelParams.Temperature)
	}
	if c.ModelParams.MaxTokens < 0 {
		return fmt.Errorf("%w: max_tokens must not be negative", ErrInvalidConfig)
	}
	if c.ToastDurationMs < 0 {
		return fmt.Errorf("%w: toast_duration_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}
