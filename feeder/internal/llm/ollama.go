package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jaconsta/rag-gallery/pkg/apperror"
)

// OllamaBackend answers descriptor prompts against a local Ollama
// server's /api/generate endpoint using a vision-capable model (e.g.
// llava). No Go Ollama client exists in this project's dependency set,
// so it talks to the documented HTTP+JSON generate API directly.
type OllamaBackend struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaBackend(baseURL, model string) *OllamaBackend {
	return &OllamaBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type ollamaGenerateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Stream bool     `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (b *OllamaBackend) Ask(ctx context.Context, kind PromptKind, imageDataURL string) (string, error) {
	image := imageDataURL
	if idx := strings.Index(image, ","); idx != -1 && strings.HasPrefix(image, "data:") {
		image = image[idx+1:]
	}
	if _, err := base64.StdEncoding.DecodeString(image); err != nil {
		return "", apperror.New(apperror.LlmMultimodalSetup, "OllamaBackend.Ask", err)
	}

	reqBody := ollamaGenerateRequest{
		Model:  b.model,
		Prompt: kind.prompt(),
		Images: []string{image},
		Stream: false,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperror.New(apperror.LlmUpstream, "OllamaBackend.Ask", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", apperror.New(apperror.LlmUpstream, "OllamaBackend.Ask", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", apperror.New(apperror.LlmUpstream, "OllamaBackend.Ask", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperror.New(apperror.LlmUpstream, "OllamaBackend.Ask",
			fmt.Errorf("ollama returned status %d", resp.StatusCode))
	}

	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperror.New(apperror.LlmUpstream, "OllamaBackend.Ask", err)
	}

	text := strings.TrimSpace(out.Response)
	if text == "" {
		return "", apperror.New(apperror.LlmEmpty, "OllamaBackend.Ask", errors.New("empty ollama response"))
	}
	return text, nil
}
