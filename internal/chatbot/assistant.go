package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"google.golang.org/genai"
)

// Assistant sends a fully built prompt to a hosted model and returns its text.
type Assistant interface {
	Respond(ctx context.Context, prompt string) (string, error)
	Name() string
	Close() error
}

// AssistantConfig wires model access.
type AssistantConfig struct {
	Provider        string
	APIKey          string
	Model           string
	BaseURL         string
	Temperature     float64
	MaxOutputTokens int
}

var (
	// ErrMissingCredential is returned when no API key is configured for the provider.
	ErrMissingCredential = errors.New("model api key missing")
	errEmptyCompletion   = errors.New("model returned empty response")
)

// NewAssistant builds the backend named by cfg.Provider ("groq" or "gemini").
func NewAssistant(ctx context.Context, cfg AssistantConfig) (Assistant, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "groq":
		assistant, err := NewGroqAssistant(cfg)
		if err != nil {
			return nil, err
		}
		return assistant, nil
	case "gemini":
		assistant, err := NewGeminiAssistant(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return assistant, nil
	default:
		return nil, fmt.Errorf("unsupported model provider %q", cfg.Provider)
	}
}

// GroqAssistant talks to Groq through its OpenAI-compatible chat completions API.
type GroqAssistant struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewGroqAssistant returns an Assistant backed by Groq.
func NewGroqAssistant(cfg AssistantConfig) (*GroqAssistant, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1/"
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	return &GroqAssistant{client: client, model: model, temperature: cfg.Temperature, maxTokens: cfg.MaxOutputTokens}, nil
}

// Name identifies the backend in logs.
func (g *GroqAssistant) Name() string { return "groq" }

// Close is a no-op.
func (g *GroqAssistant) Close() error { return nil }

// Respond sends prompt as a single user message.
func (g *GroqAssistant) Respond(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(g.temperature),
	}
	if g.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(g.maxTokens))
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}
	output := strings.TrimSpace(resp.Choices[0].Message.Content)
	if output == "" {
		return "", errEmptyCompletion
	}
	return output, nil
}

// GeminiAssistant talks to Gemini through the genai SDK.
type GeminiAssistant struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewGeminiAssistant returns an Assistant backed by the Gemini API.
func NewGeminiAssistant(ctx context.Context, cfg AssistantConfig) (*GeminiAssistant, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-2.5-flash"
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}

	return &GeminiAssistant{
		client:      client,
		model:       model,
		temperature: float32(cfg.Temperature),
		maxTokens:   cfg.MaxOutputTokens,
	}, nil
}

// Name identifies the backend in logs.
func (g *GeminiAssistant) Name() string { return "gemini" }

// Close is a no-op.
func (g *GeminiAssistant) Close() error { return nil }

// Respond sends prompt as a single user turn.
func (g *GeminiAssistant) Respond(ctx context.Context, prompt string) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	}
	if g.maxTokens > 0 {
		genCfg.MaxOutputTokens = int32(g.maxTokens)
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, genCfg)
	if err != nil {
		return "", err
	}
	output := strings.TrimSpace(resp.Text())
	if output == "" {
		return "", errEmptyCompletion
	}
	return output, nil
}
