package ports

import (
	"context"

	"digiplay-sdk/internal/core/domain"
)

// TransactionBuilder assembles unsigned transfer records.
type TransactionBuilder interface {
	Build(wallet *domain.Wallet, toAddress string, amount, fee float64) (domain.TransactionRecord, error)
}

// TransactionSigner attaches a signature to a built record, returning a copy.
type TransactionSigner interface {
	Sign(ctx context.Context, record domain.TransactionRecord, handle domain.KeyHandle) (domain.TransactionRecord, error)
}

// Broadcaster submits a signed record with bounded retries.
type Broadcaster interface {
	Broadcast(ctx context.Context, record domain.TransactionRecord) (*domain.RemoteResult, error)
}

// TokenManager creates token issuance and transfer records. Broadcasting a
// token action is the caller's responsibility.
type TokenManager interface {
	CreateToken(wallet *domain.Wallet, name string, totalSupply int64) (domain.TokenRecord, error)
	TransferToken(token domain.TokenRecord, wallet *domain.Wallet, toAddress string, amount int64) (domain.TokenTransferRecord, error)
}

// EventHandler is invoked once per event, in the order events were received.
// A returned error is logged by the poller but never stops the loop.
type EventHandler func(ctx context.Context, event domain.BlockchainEvent) error
