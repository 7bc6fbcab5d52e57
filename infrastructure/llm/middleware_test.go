package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCoreLLM is a programmable CoreLLM for middleware tests.
type stubCoreLLM struct {
	model    string
	calls    atomic.Int64
	delay    time.Duration
	response string
	// errs is consumed one per call; calls beyond its length succeed.
	errs []error
}

func (s *stubCoreLLM) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	n := s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", 0, 0, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	if int(n) <= len(s.errs) {
		return "", 0, 0, s.errs[n-1]
	}
	return s.response, 10, 20, nil
}

func (s *stubCoreLLM) GetModel() string  { return s.model }
func (s *stubCoreLLM) SetModel(m string) { s.model = m }

func TestRetryMiddleware_RecoversFromTransientErrors(t *testing.T) {
	transient := NewProviderError("stub", ErrorTypeServerError, 503, "unavailable", nil)
	stub := &stubCoreLLM{
		model:    "stub-model",
		response: "ok",
		errs:     []error{transient, transient},
	}

	wrapped := RetryMiddleware(3, time.Millisecond, 10*time.Millisecond)(stub)
	response, tokensIn, tokensOut, err := wrapped.DoRequest(context.Background(), "prompt", nil)

	require.NoError(t, err)
	assert.Equal(t, "ok", response)
	assert.Equal(t, 10, tokensIn)
	assert.Equal(t, 20, tokensOut)
	assert.Equal(t, int64(3), stub.calls.Load())
}

func TestRetryMiddleware_StopsOnNonRetryable(t *testing.T) {
	authErr := NewProviderError("stub", ErrorTypeAuthentication, 401, "bad key", nil)
	stub := &stubCoreLLM{model: "stub-model", errs: []error{authErr, authErr, authErr}}

	wrapped := RetryMiddleware(3, time.Millisecond, 10*time.Millisecond)(stub)
	_, _, _, err := wrapped.DoRequest(context.Background(), "prompt", nil)

	require.Error(t, err)
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ErrorTypeAuthentication, provErr.Type)
	assert.Equal(t, int64(1), stub.calls.Load(), "authentication failures must not be retried")
}

func TestRetryMiddleware_ExhaustsAttempts(t *testing.T) {
	transient := NewProviderError("stub", ErrorTypeRateLimit, 429, "slow down", nil)
	stub := &stubCoreLLM{model: "stub-model", errs: []error{transient, transient, transient, transient}}

	wrapped := RetryMiddleware(2, time.Millisecond, 5*time.Millisecond)(stub)
	_, _, _, err := wrapped.DoRequest(context.Background(), "prompt", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int64(3), stub.calls.Load())
}

func TestTimeoutMiddleware(t *testing.T) {
	stub := &stubCoreLLM{model: "stub-model", response: "ok", delay: 50 * time.Millisecond}

	wrapped := TimeoutMiddleware(5 * time.Millisecond)(stub)
	_, _, _, err := wrapped.DoRequest(context.Background(), "prompt", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	fast := TimeoutMiddleware(time.Second)(&stubCoreLLM{model: "stub-model", response: "ok"})
	response, _, _, err := fast.DoRequest(context.Background(), "prompt", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", response)
}

func TestRateLimitMiddleware_PropagatesCancellation(t *testing.T) {
	// Zero sustained rate with an exhausted burst forces Wait to block
	// until the context is cancelled.
	wrapped := RateLimitMiddleware(0, 0)(&stubCoreLLM{model: "stub-model", response: "ok"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, _, _, err := wrapped.DoRequest(ctx, "prompt", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestMiddleware_DelegatesModelAccess(t *testing.T) {
	stub := &stubCoreLLM{model: "stub-model", response: "ok"}

	for name, mw := range map[string]Middleware{
		"retry":      RetryMiddleware(1, time.Millisecond, time.Millisecond),
		"timeout":    TimeoutMiddleware(time.Second),
		"rate_limit": RateLimitMiddleware(100, 1),
		"metrics":    MetricsMiddleware(nil),
		"tracing":    TracingMiddleware("test"),
	} {
		wrapped := mw(stub)
		assert.Equal(t, "stub-model", wrapped.GetModel(), "%s must delegate GetModel", name)
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(errors.New("opaque failure")),
		"unclassified errors default to retryable")
	assert.True(t, isRetryable(NewProviderError("p", ErrorTypeTimeout, 0, "", nil)))
	assert.False(t, isRetryable(NewProviderError("p", ErrorTypeBadRequest, 400, "", nil)))
}
