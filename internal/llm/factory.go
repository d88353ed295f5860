package llm

import (
	"fmt"

	"github.com/mpolanco/oraculo/internal/config"
)

// NewProvider creates the generation provider from config.
func NewProvider(cfg *config.Config) (Provider, error) {
	key := cfg.ResolvedAPIKey()
	if key == "" {
		return nil, fmt.Errorf("gemini requires an API key")
	}
	return NewGeminiProvider(key, cfg.Model), nil
}
