package llm

import (
	"fmt"
	"time"
)

// ProviderConfig selects and configures a provider.
type ProviderConfig struct {
	Provider string // "gemini"
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// NewClient is the provider factory.
func NewClient(cfg ProviderConfig) (Client, error) {
	switch cfg.Provider {
	case "", "gemini":
		gc := DefaultGeminiConfig(cfg.APIKey)
		if cfg.Model != "" {
			gc.Model = cfg.Model
		}
		if cfg.Timeout > 0 {
			gc.Timeout = cfg.Timeout
		}
		return NewGeminiClient(gc), nil
	}
	return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
}
