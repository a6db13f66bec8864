// Package ai contiene los adaptadores de los proveedores de LLM.
package ai

import (
	"github.com/jhoicas/parser-config-api/internal/application/ports"
	"github.com/jhoicas/parser-config-api/pkg/config"
)

// Proveedores admitidos en AI_PROVIDER.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// New elige el adaptador según cfg.Provider. Devuelve nil si el proveedor no tiene API key:
// el playground responde entonces 503 en vez de fallar en cada llamada.
func New(cfg config.AIConfig) (ports.LLMService, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		svc, err := NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return svc, nil
	default:
		if cfg.AnthropicAPIKey == "" {
			return nil, nil
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	}
}
