package service

import (
	"context"
	"fmt"
	"strconv"

	"digiplay-sdk/internal/core/domain"
	"digiplay-sdk/internal/core/ports"
	"digiplay-sdk/pkg/apperror"

	"github.com/rs/zerolog"
)

// TransactionSignerImpl implements ports.TransactionSigner on top of a
// KeyProvider.
type TransactionSignerImpl struct {
	keys ports.KeyProvider
	log  zerolog.Logger
}

// NewTransactionSigner creates a new TransactionSignerImpl.
func NewTransactionSigner(keys ports.KeyProvider, log zerolog.Logger) *TransactionSignerImpl {
	return &TransactionSignerImpl{
		keys: keys,
		log:  log,
	}
}

// Sign returns a copy of record with a signature over its canonical
// serialization. The input record is never mutated, so the unsigned record
// stays usable for retries and audit.
func (s *TransactionSignerImpl) Sign(ctx context.Context, record domain.TransactionRecord, handle domain.KeyHandle) (domain.TransactionRecord, error) {
	payload := CanonicalPayload(record)

	sig, err := s.keys.Sign(ctx, payload, handle)
	if err != nil {
		return domain.TransactionRecord{}, apperror.ErrSigning(err)
	}
	if len(sig) == 0 {
		return domain.TransactionRecord{}, apperror.ErrSigning(fmt.Errorf("key provider returned an empty signature"))
	}

	s.log.Debug().Str("nonce", record.Nonce.String()).Msg("transaction signed")
	return record.WithSignature(sig), nil
}

// CanonicalPayload builds the byte string that gets signed.
// Format: NONCE|FROM|TO|AMOUNT|FEE|TIMESTAMP
func CanonicalPayload(r domain.TransactionRecord) []byte {
	return []byte(fmt.Sprintf("%s|%s|%s|%s|%s|%d",
		r.Nonce.String(),
		r.From,
		r.To,
		strconv.FormatFloat(r.Amount, 'f', -1, 64),
		strconv.FormatFloat(r.Fee, 'f', -1, 64),
		r.Timestamp,
	))
}
