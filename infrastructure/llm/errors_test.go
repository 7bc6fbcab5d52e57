package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier_ClassifyHTTPError(t *testing.T) {
	ec := &ErrorClassifier{Provider: "anthropic"}

	tests := []struct {
		statusCode    int
		wantType      ErrorType
		wantRetryable bool
	}{
		{401, ErrorTypeAuthentication, false},
		{403, ErrorTypeAuthentication, false},
		{429, ErrorTypeRateLimit, true},
		{400, ErrorTypeBadRequest, false},
		{404, ErrorTypeNotFound, false},
		{500, ErrorTypeServerError, true},
		{503, ErrorTypeServerError, true},
		{422, ErrorTypeBadRequest, false},
		{599, ErrorTypeServerError, true},
		{302, ErrorTypeUnknown, false},
	}

	for _, tt := range tests {
		got := ec.ClassifyHTTPError(tt.statusCode, "boom", nil)
		assert.Equal(t, tt.wantType, got.Type, "status %d", tt.statusCode)
		assert.Equal(t, tt.wantRetryable, got.IsRetryable(), "status %d", tt.statusCode)
		assert.Equal(t, tt.statusCode, got.StatusCode)
		assert.Equal(t, "anthropic", got.Provider)
	}
}

func TestErrorClassifier_ClassifyContextError(t *testing.T) {
	ec := &ErrorClassifier{Provider: "openai"}

	deadline := ec.ClassifyContextError(context.DeadlineExceeded)
	assert.Equal(t, ErrorTypeTimeout, deadline.Type)
	assert.True(t, deadline.IsRetryable())

	canceled := ec.ClassifyContextError(context.Canceled)
	assert.Equal(t, ErrorTypeNetwork, canceled.Type)

	unknown := ec.ClassifyContextError(errors.New("socket closed"))
	assert.Equal(t, ErrorTypeUnknown, unknown.Type)
}

func TestProviderError_ErrorAndUnwrap(t *testing.T) {
	wrapped := errors.New("connection reset")
	err := NewProviderError("google", ErrorTypeServerError, 503, "backend unavailable", wrapped)

	msg := err.Error()
	assert.Contains(t, msg, "google error")
	assert.Contains(t, msg, "HTTP 503")
	assert.Contains(t, msg, "server_error")
	assert.Contains(t, msg, "backend unavailable")
	assert.Contains(t, msg, "connection reset")

	assert.ErrorIs(t, err, wrapped)
}
