package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
		"REPIFY_LLM_API_KEY", "REPIFY_LLM_PROVIDER", "REPIFY_LLM_MODEL",
		"REPIFY_SERVER_ADDRESS", "REPIFY_SCRIPT_MAX_ATTEMPTS", "REPIFY_LOG_FORMAT",
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 1024, cfg.LLM.MaxTokens)
	assert.Equal(t, 30, cfg.LLM.APITimeout)
	assert.Equal(t, 3, cfg.Script.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Script.BaseDelay)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Empty(t, cfg.Contact.WebhookURL)
	assert.Error(t, cfg.RequireAPIKey())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
server:
  address: "127.0.0.1:9000"
llm:
  provider: OpenAI
  model: gpt-4.1
  api_key: sk-file
script:
  base_delay: 250ms
  language: fr-FR
page:
  calendar_url: https://cal.example.com/repify
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4.1", cfg.LLM.Model)
	assert.Equal(t, "sk-file", cfg.LLM.APIKey)
	assert.Equal(t, 250*time.Millisecond, cfg.Script.BaseDelay)
	assert.Equal(t, "fr-FR", cfg.Script.Language)
	assert.Equal(t, "https://cal.example.com/repify", cfg.Page.CalendarURL)
	assert.NoError(t, cfg.RequireAPIKey())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("REPIFY_SERVER_ADDRESS", ":7000")
	t.Setenv("REPIFY_SCRIPT_MAX_ATTEMPTS", "5")

	cfg, err := Load(writeConfig(t, "server:\n  address: \":9000\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Address)
	assert.Equal(t, 5, cfg.Script.MaxAttempts)
}

func TestLoad_ProviderKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("ANTHROPIC_API_KEY", "anthropic-key")

	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.LLM.APIKey)

	t.Setenv("REPIFY_LLM_PROVIDER", "anthropic")
	cfg, err = Load(writeConfig(t, "{}"))
	require.NoError(t, err)
	assert.Equal(t, "anthropic-key", cfg.LLM.APIKey)

	t.Setenv("REPIFY_LLM_API_KEY", "explicit")
	cfg, err = Load(writeConfig(t, "{}"))
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.LLM.APIKey)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		data string
	}{
		{"unknown provider", "llm:\n  provider: mistral\n"},
		{"unknown log format", "log:\n  format: xml\n"},
		{"no attempts", "script:\n  max_attempts: 0\n"},
		{"negative delay", "script:\n  base_delay: -1s\n"},
		{"negative rps", "ratelimit:\n  rps: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}

func TestUseProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "openai-key")

	cfg, err := Load(writeConfig(t, "llm:\n  api_key: configured\n"))
	require.NoError(t, err)

	cfg.UseProvider("Anthropic")
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "configured", cfg.LLM.APIKey)

	cfg.UseProvider("openai")
	assert.Equal(t, "openai-key", cfg.LLM.APIKey)
}

func TestGenerationBudget(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)

	// 3 attempts of 30s plus waits of 2s and 4s
	assert.Equal(t, 96*time.Second, cfg.GenerationBudget())
	assert.Greater(t, cfg.Server.WriteTimeout, cfg.GenerationBudget())
}

func TestLoad_WriteTimeoutBelowGenerationBudget(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeConfig(t, "server:\n  write_timeout: 60s\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.write_timeout")

	_, err = Load(writeConfig(t, "server:\n  write_timeout: 40s\nllm:\n  api_timeout: 10\n"))
	assert.NoError(t, err)

	_, err = Load(writeConfig(t, "server:\n  write_timeout: 0s\n"))
	assert.NoError(t, err)
}

func TestLoad_TrustedProxies(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, "server:\n  trusted_proxies: [\"10.0.0.0/8\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.Server.TrustedProxies)

	_, err = Load(writeConfig(t, "server:\n  trusted_proxies: [\"not-a-cidr\"]\n"))
	assert.Error(t, err)
}
