package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("TX_001", "Invalid amount"),
			expected: "[TX_001] Invalid amount",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("NET_001", "Broadcast failed", fmt.Errorf("connection refused")),
			expected: "[NET_001] Broadcast failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SIG_001", "wrapped", inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("TX_001", "test")
	assert.Nil(t, appErr.Unwrap())
}

func TestConstructors(t *testing.T) {
	inner := fmt.Errorf("provider unavailable")

	tests := []struct {
		name string
		err  *AppError
		code string
	}{
		{"KeyInitialization", ErrKeyInitialization(inner), "KEY_001"},
		{"InvalidTransactionInput", ErrInvalidTransactionInput("amount must be >= 0"), "TX_001"},
		{"InvalidTokenInput", ErrInvalidTokenInput("token name must not be empty"), "TOK_001"},
		{"Signing", ErrSigning(inner), "SIG_001"},
		{"BroadcastExhausted", ErrBroadcastExhausted(3, inner), "NET_001"},
		{"EventFetch", ErrEventFetch(inner), "EVT_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.True(t, HasCode(tt.err, tt.code))
		})
	}
}

func TestErrBroadcastExhausted_CarriesLastCause(t *testing.T) {
	lastErr := fmt.Errorf("HTTP 503")
	err := ErrBroadcastExhausted(3, lastErr)

	assert.True(t, errors.Is(err, lastErr))
	assert.Contains(t, err.Message, "3 attempt(s)")
}

func TestHasCode_WrappedDeeper(t *testing.T) {
	appErr := ErrEventFetch(fmt.Errorf("timeout"))
	wrapped := fmt.Errorf("poll cycle: %w", appErr)

	assert.True(t, HasCode(wrapped, CodeEventFetch))
	assert.False(t, HasCode(wrapped, CodeSigning))
}
