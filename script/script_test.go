package script

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/repify/repify/llm"
	"github.com/repify/repify/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockLLM replays a list of responses, one per call
type MockLLM struct {
	mu        sync.Mutex
	Responses []llm.Response
	Requests  []llm.Request
}

func (m *MockLLM) Prompt(ctx context.Context, req llm.Request) llm.Response {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, req)
	if len(m.Requests) > len(m.Responses) {
		return llm.Response{Error: errors.New("unexpected call")}
	}
	return m.Responses[len(m.Requests)-1]
}

func (m *MockLLM) Provider() string {
	return "mock"
}

// recordingSleeper remembers the waits instead of sleeping
type recordingSleeper struct {
	waits []time.Duration
}

func (r *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return ctx.Err()
}

func fail(msg string) llm.Response {
	return llm.Response{Error: errors.New(msg)}
}

func newTestGenerator(mock *MockLLM) (*Generator, *recordingSleeper) {
	sleeper := &recordingSleeper{}
	return NewGenerator(mock, WithSleeper(sleeper.Sleep)), sleeper
}

func TestGenerate_FirstAttemptSucceeds(t *testing.T) {
	mock := &MockLLM{Responses: []llm.Response{{Content: "HOOK: ... BODY: ... CTA: ..."}}}
	g, sleeper := newTestGenerator(mock)

	result := g.Generate(context.Background(), "morning routine")

	assert.False(t, result.Failed())
	assert.Equal(t, "HOOK: ... BODY: ... CTA: ...", result.Script)
	assert.Equal(t, 1, result.Attempts)
	assert.Len(t, mock.Requests, 1)
	assert.Empty(t, sleeper.waits)
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := &MockLLM{Responses: []llm.Response{{Content: "ok"}}}
	g, _ := newTestGenerator(mock)

	g.Generate(context.Background(), "morning routine")

	require.Len(t, mock.Requests, 1)
	assert.Equal(t, `Write a viral video script about: "morning routine"`, mock.Requests[0].UserPrompt)
	assert.Contains(t, mock.Requests[0].SystemPrompt, "HOOK (0-3s)")
	assert.Contains(t, mock.Requests[0].SystemPrompt, "under 150 words")
}

func TestGenerate_ReturnsTextUnmodified(t *testing.T) {
	raw := "  HOOK:\n\tStop scrolling!\n\nBODY: ...\nCTA: ...  \n"
	mock := &MockLLM{Responses: []llm.Response{{Content: raw}}}
	g, _ := newTestGenerator(mock)

	result := g.Generate(context.Background(), "anything")

	assert.Equal(t, raw, result.Script)
}

func TestGenerate_RecoversAfterFailures(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		wantWaits []time.Duration
	}{
		{name: "one failure", failures: 1, wantWaits: []time.Duration{2 * time.Second}},
		{name: "two failures", failures: 2, wantWaits: []time.Duration{2 * time.Second, 4 * time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var responses []llm.Response
			for i := 0; i < tt.failures; i++ {
				responses = append(responses, fail("503 overloaded"))
			}
			responses = append(responses, llm.Response{Content: "script"})
			mock := &MockLLM{Responses: responses}
			g, sleeper := newTestGenerator(mock)

			result := g.Generate(context.Background(), "real estate tips")

			assert.False(t, result.Failed())
			assert.Equal(t, "script", result.Script)
			assert.Equal(t, tt.failures+1, result.Attempts)
			assert.Len(t, mock.Requests, tt.failures+1)
			assert.Equal(t, tt.wantWaits, sleeper.waits)
		})
	}
}

func TestGenerate_ExhaustsRetries(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	defer logger.Replace(zap.New(core))()

	mock := &MockLLM{Responses: []llm.Response{
		fail("dial tcp: connection refused"),
		fail("503 overloaded"),
		fail("context deadline exceeded"),
		{Content: "never reached"},
	}}
	g, sleeper := newTestGenerator(mock)

	result := g.Generate(context.Background(), "coffee shop")

	assert.True(t, result.Failed())
	assert.Equal(t, "Our AI servers are currently overloaded. Please try again in a moment.", result.Error)
	assert.Empty(t, result.Script)
	assert.Equal(t, 3, result.Attempts)
	assert.Len(t, mock.Requests, 3)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, sleeper.waits)

	// the cause stays in the logs, never in the result
	assert.NotContains(t, result.Error, "deadline")
	failures := logs.FilterMessage("script generation failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
	assert.Equal(t, "context deadline exceeded", failures[0].ContextMap()["error"])
	assert.Equal(t, int64(3), failures[0].ContextMap()["attempts"])
	assert.Equal(t, 2, logs.FilterMessage("generation attempt failed, retrying").Len())
}

func TestGenerate_CancelledDuringBackoff(t *testing.T) {
	mock := &MockLLM{Responses: []llm.Response{fail("503"), {Content: "late"}}}
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGenerator(mock, WithSleeper(func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}))

	result := g.Generate(ctx, "coffee shop")

	assert.True(t, result.Failed())
	assert.Equal(t, FailureMessage, result.Error)
	assert.Equal(t, 1, result.Attempts)
	assert.Len(t, mock.Requests, 1)
}

func TestGenerate_CustomPolicy(t *testing.T) {
	mock := &MockLLM{Responses: []llm.Response{fail("a"), fail("b"), fail("c"), fail("d"), fail("e")}}
	sleeper := &recordingSleeper{}
	g := NewGenerator(mock,
		WithSleeper(sleeper.Sleep),
		WithRetryPolicy(RetryPolicy{MaxAttempts: 5, BaseDelay: 10 * time.Millisecond}),
	)

	result := g.Generate(context.Background(), "topic")

	assert.Equal(t, 5, result.Attempts)
	assert.Equal(t, []time.Duration{
		20 * time.Millisecond,
		40 * time.Millisecond,
		80 * time.Millisecond,
		160 * time.Millisecond,
	}, sleeper.waits)
}

func TestGenerate_WithLanguage(t *testing.T) {
	mock := &MockLLM{Responses: []llm.Response{{Content: "guion"}}}
	g := NewGenerator(mock, WithLanguage("es-ES"))

	g.Generate(context.Background(), "cafeteria")

	require.Len(t, mock.Requests, 1)
	assert.Contains(t, mock.Requests[0].SystemPrompt, "Write the script in es-ES.")
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := DefaultRetryPolicy()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, 2*time.Second, p.Backoff(1))
	assert.Equal(t, 4*time.Second, p.Backoff(2))
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
