package llm

import "fmt"

// Config mirrors the feeder's llm config section, kept backend-agnostic
// so NewBackend can construct whichever client the deployment selects.
type Config struct {
	Backend string
	OpenAI  struct {
		APIKey string
		Model  string
	}
	Ollama struct {
		BaseURL string
		Model   string
	}
}

// NewBackend constructs the configured Backend implementation.
func NewBackend(cfg Config) (Backend, error) {
	switch cfg.Backend {
	case "openai":
		return NewOpenAIBackend(cfg.OpenAI.APIKey, cfg.OpenAI.Model), nil
	case "ollama", "":
		return NewOllamaBackend(cfg.Ollama.BaseURL, cfg.Ollama.Model), nil
	default:
		return nil, fmt.Errorf("llm: unknown backend %q", cfg.Backend)
	}
}
