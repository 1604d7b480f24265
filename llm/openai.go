package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/repify/repify/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIModel implements the LLM interface using OpenAI's API
type OpenAIModel struct {
	client *openai.Client
	settings
}

// NewOpenAI creates a new OpenAI client
func NewOpenAI(apiKey string, opts ...Option) (*OpenAIModel, error) {
	if apiKey == "" {
		errMsg := "OpenAI API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	model := &OpenAIModel{
		settings: settings{
			modelName:  "gpt-4.1-mini",
			maxTokens:  1024,
			apiTimeout: 30,
		},
	}
	applyOptions(&model.settings, opts)

	config := openai.DefaultConfig(apiKey)
	if model.baseURL != "" {
		config.BaseURL = model.baseURL
	}
	if model.httpClient != nil {
		config.HTTPClient = model.httpClient
	}
	model.client = openai.NewClientWithConfig(config)

	logger.Debugf("OpenAI client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Provider returns the provider name
func (o *OpenAIModel) Provider() string {
	return ProviderOpenAI
}

// Prompt sends a request to OpenAI and returns the response
func (o *OpenAIModel) Prompt(ctx context.Context, req Request) Response {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(o.apiTimeout)*time.Second)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: req.UserPrompt,
		},
	}

	chatReq := openai.ChatCompletionRequest{
		Model:     o.modelName,
		Messages:  messages,
		MaxTokens: o.maxTokens,
	}

	logger.Debugf("Sending request to OpenAI with model %s, max tokens %d", o.modelName, o.maxTokens)

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return Response{
			Error: fmt.Errorf("failed to create chat completion: %w", err),
		}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return Response{
			Error: errors.New("OpenAI response contained no choices"),
		}
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
	}
}
