package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"digiplay-sdk/config"
	"digiplay-sdk/internal/core/domain"
	"digiplay-sdk/internal/core/ports/mocks"
	"digiplay-sdk/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testRetryDelay     = 20 * time.Millisecond
	testRequestTimeout = 1 * time.Second
)

func newBroadcaster(transport *mocks.MockBroadcastTransport, attempts int) *BroadcasterImpl {
	return NewBroadcaster(transport, config.BroadcastConfig{
		RetryAttempts: attempts,
		RetryDelay:    testRetryDelay,
	}, testRequestTimeout, newTestLogger())
}

func TestBroadcast_FirstAttemptSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := unsignedRecord().WithSignature([]byte("sig"))
	want := &domain.RemoteResult{TxID: "tx-1", Status: "accepted"}

	transport := mocks.NewMockBroadcastTransport(ctrl)
	transport.EXPECT().Submit(gomock.Any(), rec).Return(want, nil).Times(1)

	start := time.Now()
	got, err := newBroadcaster(transport, 3).Broadcast(context.Background(), rec)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Less(t, time.Since(start), testRetryDelay, "success must return immediately, no delay")
}

func TestBroadcast_FailsNTimesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := unsignedRecord().WithSignature([]byte("sig"))
	want := &domain.RemoteResult{TxID: "tx-2", Status: "accepted"}

	calls := 0
	transport := mocks.NewMockBroadcastTransport(ctrl)
	transport.EXPECT().Submit(gomock.Any(), rec).
		DoAndReturn(func(context.Context, domain.TransactionRecord) (*domain.RemoteResult, error) {
			calls++
			if calls <= 2 {
				return nil, errors.New("HTTP 503")
			}
			return want, nil
		}).Times(3)

	start := time.Now()
	got, err := newBroadcaster(transport, 3).Broadcast(context.Background(), rec)
	elapsed := time.Since(start)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, 3, calls)
	assert.GreaterOrEqual(t, elapsed, 2*testRetryDelay, "two failures mean two delays")
}

func TestBroadcast_AllAttemptsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := unsignedRecord().WithSignature([]byte("sig"))
	lastErr := errors.New("connection refused")

	transport := mocks.NewMockBroadcastTransport(ctrl)
	transport.EXPECT().Submit(gomock.Any(), rec).Return(nil, lastErr).Times(3)

	result, err := newBroadcaster(transport, 3).Broadcast(context.Background(), rec)

	assert.Nil(t, result)
	assert.True(t, apperror.HasCode(err, apperror.CodeBroadcastExhausted))
	assert.True(t, errors.Is(err, lastErr), "exhausted error must carry the last cause")
}

func TestBroadcast_ZeroAttemptsFailsWithoutSubmitting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT on Submit: any call would fail the test.
	transport := mocks.NewMockBroadcastTransport(ctrl)

	result, err := newBroadcaster(transport, 0).Broadcast(context.Background(), unsignedRecord())

	assert.Nil(t, result)
	assert.True(t, apperror.HasCode(err, apperror.CodeBroadcastExhausted))
	assert.True(t, errors.Is(err, ErrNoAttemptsConfigured))
}

func TestBroadcast_ContextCanceledDuringDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := unsignedRecord().WithSignature([]byte("sig"))

	ctx, cancel := context.WithCancel(context.Background())
	transport := mocks.NewMockBroadcastTransport(ctrl)
	transport.EXPECT().Submit(gomock.Any(), rec).
		DoAndReturn(func(context.Context, domain.TransactionRecord) (*domain.RemoteResult, error) {
			cancel() // cancel while the broadcaster waits out the retry delay
			return nil, errors.New("HTTP 500")
		}).Times(1)

	result, err := newBroadcaster(transport, 3).Broadcast(ctx, rec)

	assert.Nil(t, result)
	assert.True(t, apperror.HasCode(err, apperror.CodeBroadcastExhausted))
	assert.True(t, errors.Is(err, context.Canceled))
}
