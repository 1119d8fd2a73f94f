package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// OpenAIClient is a minimal client for OpenAI chat completion calls used for
// transcript extraction
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewOpenAIClient creates an OpenAI client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("OPENAI_API_URL")
		if base == "" {
			base = "https://api.openai.com"
		}
	}

	model := "gpt-4o-mini"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// ChatMessage is a single chat turn
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat forces the completion into a given output shape
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model          string          `json:"model,omitempty"`
	Messages       []ChatMessage   `json:"messages,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a system and user message to OpenAI and returns the
// assistant content. The response format is pinned to a JSON object.
func (o *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := ChatRequest{
		Model: o.model,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    0.1,
		MaxTokens:      4000,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := o.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from openai")
	}
	return cr.Choices[0].Message.Content, nil
}
