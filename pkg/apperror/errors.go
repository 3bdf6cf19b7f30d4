package apperror

import (
	"errors"
	"fmt"
)

// AppError is a structured SDK error with a stable machine-readable code.
type AppError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Err     error  `json:"-"` // Wrapped underlying cause (not serialized)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an underlying error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes used across the SDK.
const (
	CodeKeyInitialization       = "KEY_001"
	CodeInvalidTransactionInput = "TX_001"
	CodeInvalidTokenInput       = "TOK_001"
	CodeSigning                 = "SIG_001"
	CodeBroadcastExhausted      = "NET_001"
	CodeEventFetch              = "EVT_001"
)

// HasCode reports whether any error in err's chain carries the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ---- Wallet & Keys (KEY) ----

func ErrKeyInitialization(err error) *AppError {
	return Wrap(CodeKeyInitialization, "Wallet key initialization failed", err)
}

// ---- Transactions (TX) ----

func ErrInvalidTransactionInput(reason string) *AppError {
	return New(CodeInvalidTransactionInput, reason)
}

// ---- Tokens (TOK) ----

func ErrInvalidTokenInput(reason string) *AppError {
	return New(CodeInvalidTokenInput, reason)
}

// ---- Signing (SIG) ----

func ErrSigning(err error) *AppError {
	return Wrap(CodeSigning, "Transaction signing failed", err)
}

// ---- Network & Broadcast (NET) ----

// ErrBroadcastExhausted wraps the last attempt's cause after all broadcast
// attempts failed.
func ErrBroadcastExhausted(attempts int, lastErr error) *AppError {
	return Wrap(
		CodeBroadcastExhausted,
		fmt.Sprintf("Broadcast failed after %d attempt(s)", attempts),
		lastErr,
	)
}

// ---- Event polling (EVT) ----

func ErrEventFetch(err error) *AppError {
	return Wrap(CodeEventFetch, "Event fetch failed", err)
}
