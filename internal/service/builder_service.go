package service

import (
	"time"

	"digiplay-sdk/internal/core/domain"
	"digiplay-sdk/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultFee is the fee attached when the caller does not choose one.
const DefaultFee = 0.001

// TransactionBuilderImpl implements ports.TransactionBuilder.
type TransactionBuilderImpl struct {
	log zerolog.Logger
}

// NewTransactionBuilder creates a new TransactionBuilderImpl.
func NewTransactionBuilder(log zerolog.Logger) *TransactionBuilderImpl {
	return &TransactionBuilderImpl{log: log}
}

// Build assembles an unsigned transfer record from the wallet, recipient and
// amounts, capturing the wall clock at call time. Each record carries a fresh
// nonce so two builds in the same second remain distinguishable.
func (b *TransactionBuilderImpl) Build(wallet *domain.Wallet, toAddress string, amount, fee float64) (domain.TransactionRecord, error) {
	if wallet == nil || wallet.Address == "" {
		return domain.TransactionRecord{}, apperror.ErrInvalidTransactionInput("wallet is not initialized")
	}
	if toAddress == "" {
		return domain.TransactionRecord{}, apperror.ErrInvalidTransactionInput("recipient address must not be empty")
	}
	if amount < 0 {
		return domain.TransactionRecord{}, apperror.ErrInvalidTransactionInput("amount must be >= 0")
	}
	if fee < 0 {
		return domain.TransactionRecord{}, apperror.ErrInvalidTransactionInput("fee must be >= 0")
	}

	rec := domain.TransactionRecord{
		Nonce:     uuid.New(),
		From:      wallet.Address,
		To:        toAddress,
		Amount:    amount,
		Fee:       fee,
		Timestamp: time.Now().Unix(),
	}

	b.log.Debug().
		Str("nonce", rec.Nonce.String()).
		Str("from", rec.From).
		Str("to", rec.To).
		Float64("amount", rec.Amount).
		Float64("fee", rec.Fee).
		Msg("transaction built")

	return rec, nil
}
