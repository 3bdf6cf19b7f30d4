package service

import (
	"context"

	"digiplay-sdk/config"
	"digiplay-sdk/internal/core/domain"
	"digiplay-sdk/internal/core/ports"
	"digiplay-sdk/pkg/logger"

	"github.com/rs/zerolog"
)

// SDK is the main entry point for game integrations. It owns one wallet and
// composes the build -> sign -> broadcast pipeline behind SendPayment.
type SDK struct {
	wallet      *domain.Wallet
	builder     ports.TransactionBuilder
	signer      ports.TransactionSigner
	broadcaster ports.Broadcaster
	tokens      ports.TokenManager
	log         zerolog.Logger
}

// NewSDK initializes the wallet and wires the pipeline services.
// keyMaterial may be nil, in which case a fresh key is generated through the
// provider. Key initialization failures propagate; there is no fallback.
func NewSDK(
	ctx context.Context,
	cfg *config.Config,
	keys ports.KeyProvider,
	transport ports.BroadcastTransport,
	keyMaterial domain.KeyHandle,
	log zerolog.Logger,
) (*SDK, error) {
	wallet, err := NewWalletService(keys, logger.Component(log, "wallet")).Init(ctx, keyMaterial)
	if err != nil {
		return nil, err
	}

	sdk := &SDK{
		wallet:      wallet,
		builder:     NewTransactionBuilder(logger.Component(log, "builder")),
		signer:      NewTransactionSigner(keys, logger.Component(log, "signer")),
		broadcaster: NewBroadcaster(transport, cfg.Broadcast, cfg.API.RequestTimeout, logger.Component(log, "broadcaster")),
		tokens:      NewTokenManager(logger.Component(log, "tokens")),
		log:         log,
	}

	log.Info().Str("address", wallet.Address).Str("network", cfg.API.Network).Msg("SDK initialized")
	return sdk, nil
}

// Wallet returns the wallet owned by this SDK instance.
func (s *SDK) Wallet() *domain.Wallet {
	return s.wallet
}

// Tokens returns the token manager bound to this SDK's wallet provider.
func (s *SDK) Tokens() ports.TokenManager {
	return s.tokens
}

// SendPayment builds, signs and broadcasts a payment with the default fee.
// Each stage short-circuits on failure; later stages are never attempted.
// Concurrent calls are safe: every call owns its own record and shares only
// the read-only wallet.
func (s *SDK) SendPayment(ctx context.Context, toAddress string, amount float64) (*domain.RemoteResult, error) {
	record, err := s.builder.Build(s.wallet, toAddress, amount, DefaultFee)
	if err != nil {
		return nil, err
	}

	signed, err := s.signer.Sign(ctx, record, s.wallet.KeyHandle)
	if err != nil {
		return nil, err
	}

	return s.broadcaster.Broadcast(ctx, signed)
}
