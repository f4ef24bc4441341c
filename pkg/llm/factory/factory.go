package factory

import (
	"fmt"

	"roadmap-be/pkg/llm"
	"roadmap-be/pkg/llm/ollama"
)

// NewLLMProvider returns (nil, nil) for "none" so callers can run without a model.
func NewLLMProvider(providerType, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "", "none":
		return nil, nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
