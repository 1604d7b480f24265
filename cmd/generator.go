package cmd

import (
	"context"
	"fmt"

	"github.com/repify/repify/config"
	"github.com/repify/repify/llm"
	"github.com/repify/repify/logger"
	"github.com/repify/repify/script"
	"github.com/spf13/cobra"
)

// addLLMFlags registers the provider overrides shared by serve and generate
func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("provider", "p", "", "LLM provider to use (gemini, openai, anthropic)")
	cmd.Flags().StringP("model", "m", "", "LLM model to use (provider default when empty)")
	cmd.Flags().String("language", "", "Language the scripts are written in (e.g. es-ES)")
}

// applyLLMFlags copies explicitly set flags over the loaded configuration
func applyLLMFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("provider") {
		provider, _ := cmd.Flags().GetString("provider")
		cfg.UseProvider(provider)
	}
	if cmd.Flags().Changed("model") {
		cfg.LLM.Model, _ = cmd.Flags().GetString("model")
	}
	if cmd.Flags().Changed("language") {
		cfg.Script.Language, _ = cmd.Flags().GetString("language")
	}
	return cfg.Validate()
}

// newGenerator builds the script generator for the configured provider
func newGenerator(ctx context.Context, cfg *config.Config) (*script.Generator, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	client, err := llm.NewLLM(ctx, cfg.LLM.Provider, cfg.LLM.APIKey,
		llm.WithModel(cfg.LLM.Model),
		llm.WithMaxTokens(cfg.LLM.MaxTokens),
		llm.WithAPITimeout(cfg.LLM.APITimeout),
		llm.WithBaseURL(cfg.LLM.BaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for LLM provider %s: %w", cfg.LLM.Provider, err)
	}

	logger.Sugar().Infow("LLM provider ready", "provider", client.Provider(), "model", cfg.LLM.Model)

	return script.NewGenerator(client,
		script.WithRetryPolicy(script.RetryPolicy{
			MaxAttempts: cfg.Script.MaxAttempts,
			BaseDelay:   cfg.Script.BaseDelay,
		}),
		script.WithLanguage(cfg.Script.Language),
	), nil
}
