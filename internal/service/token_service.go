package service

import (
	"strings"
	"time"

	"digiplay-sdk/internal/core/domain"
	"digiplay-sdk/pkg/apperror"

	"github.com/rs/zerolog"
)

// TokenManagerImpl implements ports.TokenManager. Pure record constructors:
// no network interaction, broadcasting a token action is the caller's
// responsibility.
type TokenManagerImpl struct {
	log zerolog.Logger
}

// NewTokenManager creates a new TokenManagerImpl.
func NewTokenManager(log zerolog.Logger) *TokenManagerImpl {
	return &TokenManagerImpl{log: log}
}

// CreateToken issues a new token record from the wallet.
func (m *TokenManagerImpl) CreateToken(wallet *domain.Wallet, name string, totalSupply int64) (domain.TokenRecord, error) {
	if wallet == nil || wallet.Address == "" {
		return domain.TokenRecord{}, apperror.ErrInvalidTokenInput("wallet is not initialized")
	}
	if strings.TrimSpace(name) == "" {
		return domain.TokenRecord{}, apperror.ErrInvalidTokenInput("token name must not be empty")
	}
	if totalSupply <= 0 {
		return domain.TokenRecord{}, apperror.ErrInvalidTokenInput("total supply must be > 0")
	}

	token := domain.TokenRecord{
		Issuer:      wallet.Address,
		TokenName:   name,
		TotalSupply: totalSupply,
		Timestamp:   time.Now().Unix(),
	}

	m.log.Debug().
		Str("issuer", token.Issuer).
		Str("token_name", token.TokenName).
		Int64("total_supply", token.TotalSupply).
		Msg("token created")

	return token, nil
}

// TransferToken builds a transfer record for a previously issued token.
func (m *TokenManagerImpl) TransferToken(token domain.TokenRecord, wallet *domain.Wallet, toAddress string, amount int64) (domain.TokenTransferRecord, error) {
	if wallet == nil || wallet.Address == "" {
		return domain.TokenTransferRecord{}, apperror.ErrInvalidTokenInput("wallet is not initialized")
	}
	if token.TokenName == "" {
		return domain.TokenTransferRecord{}, apperror.ErrInvalidTokenInput("token is not initialized")
	}
	if toAddress == "" {
		return domain.TokenTransferRecord{}, apperror.ErrInvalidTokenInput("recipient address must not be empty")
	}
	if amount <= 0 {
		return domain.TokenTransferRecord{}, apperror.ErrInvalidTokenInput("transfer amount must be > 0")
	}

	transfer := domain.TokenTransferRecord{
		Token:     token,
		From:      wallet.Address,
		To:        toAddress,
		Amount:    amount,
		Timestamp: time.Now().Unix(),
	}

	m.log.Debug().
		Str("token_name", token.TokenName).
		Str("from", transfer.From).
		Str("to", transfer.To).
		Int64("amount", transfer.Amount).
		Msg("token transfer built")

	return transfer, nil
}
