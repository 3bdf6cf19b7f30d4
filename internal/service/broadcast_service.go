package service

import (
	"context"
	"errors"
	"time"

	"digiplay-sdk/config"
	"digiplay-sdk/internal/core/domain"
	"digiplay-sdk/internal/core/ports"
	"digiplay-sdk/pkg/apperror"

	"github.com/rs/zerolog"
)

// ErrNoAttemptsConfigured is the underlying cause when the retry budget is
// zero: the broadcast fails without a single submission.
var ErrNoAttemptsConfigured = errors.New("no broadcast attempts configured")

// BroadcasterImpl implements ports.Broadcaster: bounded retries with a
// constant delay over an attempt-independent transport.
type BroadcasterImpl struct {
	transport      ports.BroadcastTransport
	attempts       int
	delay          time.Duration
	requestTimeout time.Duration
	log            zerolog.Logger
}

// NewBroadcaster creates a new BroadcasterImpl. requestTimeout bounds each
// individual attempt; cfg controls the retry policy.
func NewBroadcaster(transport ports.BroadcastTransport, cfg config.BroadcastConfig, requestTimeout time.Duration, log zerolog.Logger) *BroadcasterImpl {
	return &BroadcasterImpl{
		transport:      transport,
		attempts:       cfg.RetryAttempts,
		delay:          cfg.RetryDelay,
		requestTimeout: requestTimeout,
		log:            log,
	}
}

// Broadcast submits the signed record, retrying up to the configured attempt
// count with a constant delay between failures. The first success returns
// immediately. Timeouts, network errors and non-2xx responses are all
// retryable; only the final error detail distinguishes them.
func (b *BroadcasterImpl) Broadcast(ctx context.Context, record domain.TransactionRecord) (*domain.RemoteResult, error) {
	if b.attempts <= 0 {
		return nil, apperror.ErrBroadcastExhausted(0, ErrNoAttemptsConfigured)
	}

	var lastErr error
	for attempt := 1; attempt <= b.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(b.delay):
			case <-ctx.Done():
				return nil, apperror.ErrBroadcastExhausted(attempt-1, ctx.Err())
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, b.requestTimeout)
		result, err := b.transport.Submit(attemptCtx, record)
		cancel()

		if err == nil {
			b.log.Info().
				Str("nonce", record.Nonce.String()).
				Str("txid", result.TxID).
				Int("attempt", attempt).
				Msg("transaction broadcast accepted")
			return result, nil
		}

		lastErr = err
		b.log.Warn().
			Err(err).
			Str("nonce", record.Nonce.String()).
			Int("attempt", attempt).
			Int("max_attempts", b.attempts).
			Msg("broadcast attempt failed")
	}

	return nil, apperror.ErrBroadcastExhausted(b.attempts, lastErr)
}
