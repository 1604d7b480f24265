// Package config loads service configuration from a YAML file, the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/repify/repify/llm"
	"github.com/repify/repify/logger"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. REPIFY_LLM_MODEL
const EnvPrefix = "REPIFY"

// Config is the complete service configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Server    ServerConfig    `mapstructure:"server"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Script    ScriptConfig    `mapstructure:"script"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Page      PageConfig      `mapstructure:"page"`
	Contact   ContactConfig   `mapstructure:"contact"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig configures the listener. TrustedProxies lists the CIDR ranges
// whose X-Forwarded-For header is believed; empty means the peer address is
// the client IP.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	TrustedProxies  []string      `mapstructure:"trusted_proxies"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LLMConfig selects the generation service. APITimeout is in seconds.
type LLMConfig struct {
	Provider   string `mapstructure:"provider"`
	Model      string `mapstructure:"model"`
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	MaxTokens  int    `mapstructure:"max_tokens"`
	APITimeout int    `mapstructure:"api_timeout"`
}

type ScriptConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	BaseDelay   time.Duration `mapstructure:"base_delay"`
	Language    string        `mapstructure:"language"`
}

// RateLimitConfig bounds script requests per client IP. RPS 0 disables the limiter.
type RateLimitConfig struct {
	RPS       float64       `mapstructure:"rps"`
	Burst     int           `mapstructure:"burst"`
	ExpiresIn time.Duration `mapstructure:"expires_in"`
}

type PageConfig struct {
	ContentFile string `mapstructure:"content_file"`
	CalendarURL string `mapstructure:"calendar_url"`
}

// ContactConfig configures lead delivery. Timeout bounds one webhook call,
// Deadline the whole delivery including retries.
type ContactConfig struct {
	WebhookURL string        `mapstructure:"webhook_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Deadline   time.Duration `mapstructure:"deadline"`
}

// providerKeyEnv maps providers to the conventional variable holding their key
var providerKeyEnv = map[string]string{
	llm.ProviderGemini:    "GEMINI_API_KEY",
	llm.ProviderOpenAI:    "OPENAI_API_KEY",
	llm.ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// Load reads configuration from cfgFile, or repify.yaml in the working
// directory or $HOME/.config/repify when cfgFile is empty. A missing file is not
// an error. Environment variables override file values.
func Load(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("repify")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/repify")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if cfg.LLM.APIKey == "" {
		if name, ok := providerKeyEnv[cfg.LLM.Provider]; ok {
			cfg.LLM.APIKey = os.Getenv(name)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logger.FormatJSON)

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("llm.provider", llm.ProviderGemini)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("llm.api_timeout", 30)

	v.SetDefault("script.max_attempts", 3)
	v.SetDefault("script.base_delay", time.Second)
	v.SetDefault("script.language", "")

	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("ratelimit.expires_in", 3*time.Minute)

	v.SetDefault("page.content_file", "")
	v.SetDefault("page.calendar_url", "")

	v.SetDefault("contact.webhook_url", "")
	v.SetDefault("contact.timeout", 10*time.Second)
	v.SetDefault("contact.deadline", 30*time.Second)
}

// Validate checks values that have no usable fallback
func (c *Config) Validate() error {
	if _, ok := providerKeyEnv[c.LLM.Provider]; !ok {
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	if c.Log.Format != logger.FormatJSON && c.Log.Format != logger.FormatConsole {
		return fmt.Errorf("unsupported log format: %q", c.Log.Format)
	}
	if c.Script.MaxAttempts < 1 {
		return fmt.Errorf("script.max_attempts must be at least 1, got %d", c.Script.MaxAttempts)
	}
	if c.Script.BaseDelay < 0 {
		return fmt.Errorf("script.base_delay must not be negative, got %s", c.Script.BaseDelay)
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("ratelimit.rps must not be negative, got %v", c.RateLimit.RPS)
	}
	for _, cidr := range c.Server.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("server.trusted_proxies: %w", err)
		}
	}
	// The failure message must reach the client before the write deadline
	if budget := c.GenerationBudget(); c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= budget {
		return fmt.Errorf("server.write_timeout %s must exceed the worst case script generation of %s", c.Server.WriteTimeout, budget)
	}
	return nil
}

// GenerationBudget is the longest a script generation can take: every
// attempt running into llm.api_timeout plus every backoff wait.
func (c *Config) GenerationBudget() time.Duration {
	apiTimeout := c.LLM.APITimeout
	if apiTimeout <= 0 {
		apiTimeout = 30
	}

	budget := time.Duration(c.Script.MaxAttempts) * time.Duration(apiTimeout) * time.Second
	for n := 1; n < c.Script.MaxAttempts; n++ {
		budget += c.Script.BaseDelay * time.Duration(1<<uint(n))
	}
	return budget
}

// UseProvider switches the provider. The provider's conventional key
// variable, when set, replaces the configured key.
func (c *Config) UseProvider(name string) {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(name))
	if key := os.Getenv(providerKeyEnv[c.LLM.Provider]); key != "" {
		c.LLM.APIKey = key
	}
}

// RequireAPIKey fails when no credential for the configured provider is set
func (c *Config) RequireAPIKey() error {
	if c.LLM.APIKey != "" {
		return nil
	}
	return fmt.Errorf("no API key for provider %s: set llm.api_key, %s_LLM_API_KEY or %s",
		c.LLM.Provider, EnvPrefix, providerKeyEnv[c.LLM.Provider])
}
