package common

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/repify/repify/logger"
	"github.com/repify/repify/version"
	"go.uber.org/zap"
)

// RetryConfig tunes the retrying client used for outbound webhooks
type RetryConfig struct {
	// Retries after the first attempt
	RetryMax int
	// Backoff bounds between attempts
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// Per-attempt timeout, zero keeps the library default
	Timeout time.Duration
	// Decides whether a response or error is retried. Nil uses WebhookRetryPolicy.
	CheckRetry retryablehttp.CheckRetry
}

// DefaultRetryConfig retries a webhook three times over a few seconds
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		RetryMax:     3,
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		Timeout:      10 * time.Second,
		CheckRetry:   WebhookRetryPolicy,
	}
}

// WebhookRetryPolicy retries connection errors, 429 and 5xx. Other 4xx
// responses mean the receiver rejected the payload and are returned as is.
func WebhookRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return true, nil
	}
	return false, nil
}

// NewRetryableClient builds a client whose attempts are logged through the
// global zap logger under the given target name
func NewRetryableClient(target string, config RetryConfig) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = config.RetryMax
	client.RetryWaitMin = config.RetryWaitMin
	client.RetryWaitMax = config.RetryWaitMax
	client.CheckRetry = WebhookRetryPolicy
	if config.CheckRetry != nil {
		client.CheckRetry = config.CheckRetry
	}
	if config.Timeout > 0 {
		client.HTTPClient.Timeout = config.Timeout
	}

	// Hand the last response back to the caller instead of a generic "giving up" error
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	userAgent := "repify/" + version.Version
	client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		req.Header.Set("User-Agent", userAgent)
		if attempt > 0 {
			logger.Sugar().Debugw("retrying outbound request", "target", target, "attempt", attempt+1)
		}
	}

	client.Logger = retryLogger{log: logger.Sugar().With(zap.String("target", target))}
	return client
}

// retryLogger satisfies retryablehttp.LeveledLogger
type retryLogger struct {
	log *zap.SugaredLogger
}

func (r retryLogger) Error(msg string, keysAndValues ...interface{}) {
	r.log.Errorw(msg, keysAndValues...)
}

func (r retryLogger) Info(msg string, keysAndValues ...interface{}) {
	r.log.Infow(msg, keysAndValues...)
}

func (r retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	r.log.Debugw(msg, keysAndValues...)
}

func (r retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	r.log.Warnw(msg, keysAndValues...)
}
