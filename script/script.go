// Package script turns a free-text topic into a short video script through a
// generation service, retrying failed calls with exponential backoff.
package script

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/repify/repify/llm"
	"github.com/repify/repify/logger"
	"github.com/repify/repify/metrics"
	"github.com/repify/repify/prompt"
)

const (
	// FailureMessage is the only failure text callers ever see.
	FailureMessage = "Our AI servers are currently overloaded. Please try again in a moment."
	// MaxTopicLength is the longest topic the page and API accept, in characters.
	MaxTopicLength = 500
)

// Result is the outcome of one generation. Exactly one of Script and Error is set.
type Result struct {
	Script   string `json:"script,omitempty"`
	Error    string `json:"error,omitempty"`
	Attempts int    `json:"-"`
}

// Failed reports whether the generation ended without a script
func (r Result) Failed() bool {
	return r.Error != ""
}

// RetryPolicy bounds the attempt sequence of a single generation.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy allows 3 attempts with waits of 2s and 4s between them
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
	}
}

// Backoff returns the wait before the next attempt once failed attempts have failed:
// BaseDelay * 2^failed.
func (p RetryPolicy) Backoff(failed int) time.Duration {
	return p.BaseDelay * time.Duration(1<<uint(failed))
}

// Sleeper waits for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Option configures a Generator
type Option func(*Generator)

// WithRetryPolicy overrides the default retry policy
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(g *Generator) {
		if policy.MaxAttempts > 0 {
			g.policy.MaxAttempts = policy.MaxAttempts
		}
		if policy.BaseDelay >= 0 {
			g.policy.BaseDelay = policy.BaseDelay
		}
	}
}

// WithSleeper replaces the backoff wait
func WithSleeper(sleep Sleeper) Option {
	return func(g *Generator) {
		g.sleep = sleep
	}
}

// WithLanguage asks the model for scripts in the given language
func WithLanguage(language string) Option {
	return func(g *Generator) {
		g.systemPrompt = prompt.GetSystemPrompt(language)
	}
}

// Generator is the script generation client. It is safe for concurrent use;
// calls share no state.
type Generator struct {
	llm          llm.LLM
	policy       RetryPolicy
	sleep        Sleeper
	systemPrompt string
}

// NewGenerator creates a Generator over the given LLM client
func NewGenerator(client llm.LLM, opts ...Option) *Generator {
	g := &Generator{
		llm:          client,
		policy:       DefaultRetryPolicy(),
		sleep:        sleepContext,
		systemPrompt: prompt.GetSystemPrompt(""),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes a script about topic. Callers are expected to reject empty
// topics before calling. Attempts run strictly one after another; the last
// failure is logged and reported as FailureMessage.
func (g *Generator) Generate(ctx context.Context, topic string) Result {
	start := time.Now()
	provider := g.llm.Provider()
	log := logger.With("generation_id", uuid.NewString(), "provider", provider)

	req := llm.Request{
		SystemPrompt: g.systemPrompt,
		UserPrompt:   prompt.GetScriptPrompt(topic),
	}

	var lastErr error
	attempts := 0
	for attempts < g.policy.MaxAttempts {
		attempts++

		resp := g.llm.Prompt(ctx, req)
		if resp.Error == nil {
			metrics.RecordAttempt(provider, metrics.OutcomeSuccess)
			metrics.RecordGeneration(provider, metrics.OutcomeSuccess, time.Since(start).Seconds())
			log.Infow("script generated", "attempts", attempts, "duration", time.Since(start))
			return Result{Script: resp.Content, Attempts: attempts}
		}

		metrics.RecordAttempt(provider, metrics.OutcomeFailure)
		lastErr = resp.Error

		if attempts == g.policy.MaxAttempts {
			break
		}

		wait := g.policy.Backoff(attempts)
		log.Warnw("generation attempt failed, retrying", "attempt", attempts, "backoff", wait, "error", resp.Error)
		if err := g.sleep(ctx, wait); err != nil {
			lastErr = err
			break
		}
	}

	metrics.RecordGeneration(provider, metrics.OutcomeFailure, time.Since(start).Seconds())
	log.Errorw("script generation failed", "attempts", attempts, "error", lastErr)

	return Result{Error: FailureMessage, Attempts: attempts}
}
