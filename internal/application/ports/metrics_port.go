package ports

import "time"

// LLMMetrics registra cada llamada al proveedor de IA.
type LLMMetrics interface {
	// ObserveLLMCall outcome es "ok", "error" o "timeout".
	ObserveLLMCall(provider, outcome string, elapsed time.Duration)
}
