package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/repify/repify/logger"
	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model option is given
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiModel implements the LLM interface using the Gemini API
type GeminiModel struct {
	client *genai.Client
	settings
}

// NewGemini creates a new Gemini client
func NewGemini(ctx context.Context, apiKey string, opts ...Option) (*GeminiModel, error) {
	if apiKey == "" {
		errMsg := "Gemini API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	model := &GeminiModel{
		settings: settings{
			modelName:  DefaultGeminiModel,
			maxTokens:  1024,
			apiTimeout: 30,
		},
	}
	applyOptions(&model.settings, opts)

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: model.httpClient,
	}
	if model.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: model.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model.client = client

	logger.Debugf("Gemini client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Provider returns the provider name
func (g *GeminiModel) Provider() string {
	return ProviderGemini
}

// Prompt sends a request to Gemini and returns the response
func (g *GeminiModel) Prompt(ctx context.Context, req Request) Response {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.apiTimeout)*time.Second)
	defer cancel()

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(g.maxTokens),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	logger.Debugf("Sending request to Gemini with model %s", g.modelName)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.UserPrompt), config)
	if err != nil {
		return Response{
			Error: fmt.Errorf("failed to generate content: %w", err),
		}
	}

	text := resp.Text()
	if text == "" {
		return Response{
			Error: errors.New("Gemini response contained no text"),
		}
	}

	return Response{
		Content: text,
	}
}
