package service

import (
	"context"

	"digiplay-sdk/internal/core/domain"
	"digiplay-sdk/internal/core/ports"
	"digiplay-sdk/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletService initializes wallets through a KeyProvider.
type WalletService struct {
	keys ports.KeyProvider
	log  zerolog.Logger
}

// NewWalletService creates a new WalletService.
func NewWalletService(keys ports.KeyProvider, log zerolog.Logger) *WalletService {
	return &WalletService{
		keys: keys,
		log:  log,
	}
}

// Init builds a wallet from the supplied key material, or generates fresh
// material when none is given. Provider failures propagate as KEY_001 with
// no silent fallback.
func (s *WalletService) Init(ctx context.Context, keyMaterial domain.KeyHandle) (*domain.Wallet, error) {
	if len(keyMaterial) > 0 {
		address, err := s.keys.DeriveAddress(ctx, keyMaterial)
		if err != nil {
			return nil, apperror.ErrKeyInitialization(err)
		}
		s.log.Info().Str("address", address).Msg("wallet initialized from supplied key")
		return &domain.Wallet{KeyHandle: keyMaterial, Address: address}, nil
	}

	handle, address, err := s.keys.Generate(ctx)
	if err != nil {
		return nil, apperror.ErrKeyInitialization(err)
	}
	s.log.Info().Str("address", address).Msg("wallet initialized with generated key")
	return &domain.Wallet{KeyHandle: handle, Address: address}, nil
}
