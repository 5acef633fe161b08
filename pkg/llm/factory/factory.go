package factory

import (
	"fmt"

	"assessment-assistant-be/pkg/llm"
	"assessment-assistant-be/pkg/llm/ollama"
	"assessment-assistant-be/pkg/llm/openaicompat"
)

func NewLLMProvider(providerType, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "openai":
		return openaicompat.NewProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
