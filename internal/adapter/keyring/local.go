// Package keyring provides a development-grade KeyProvider. It signs with
// ed25519 and derives addresses from a blake2b digest of the public key.
// It does NOT implement any real chain's key format or signature scheme;
// production integrations must supply their own provider.
package keyring

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"digiplay-sdk/config"
	"digiplay-sdk/internal/core/domain"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"
)

// addressDigestLen is the number of digest bytes encoded into the address.
const addressDigestLen = 20

// LocalKeyProvider keeps key material in process memory. The key handle is
// the ed25519 seed.
type LocalKeyProvider struct {
	prefix string
	log    zerolog.Logger
}

// NewLocalKeyProvider creates a provider whose addresses carry a
// network-dependent prefix: "D8" on mainnet, "T8" on testnet.
func NewLocalKeyProvider(network string, log zerolog.Logger) *LocalKeyProvider {
	prefix := "D8"
	if network == config.NetworkTestnet {
		prefix = "T8"
	}
	return &LocalKeyProvider{
		prefix: prefix,
		log:    log,
	}
}

// Generate creates a fresh ed25519 keypair and returns the seed as the
// opaque handle along with the derived address.
func (p *LocalKeyProvider) Generate(ctx context.Context) (domain.KeyHandle, string, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, "", fmt.Errorf("generating keypair: %w", err)
	}

	handle := domain.KeyHandle(priv.Seed())
	address, err := p.DeriveAddress(ctx, handle)
	if err != nil {
		return nil, "", err
	}

	p.log.Debug().Str("address", address).Msg("generated local keypair")
	return handle, address, nil
}

// DeriveAddress computes prefix + hex(blake2b-256(pubkey)[:20]). The same
// handle always yields the same address.
func (p *LocalKeyProvider) DeriveAddress(_ context.Context, handle domain.KeyHandle) (string, error) {
	priv, err := privateKeyFromHandle(handle)
	if err != nil {
		return "", err
	}

	pub := priv.Public().(ed25519.PublicKey)
	sum := blake2b.Sum256(pub)
	return p.prefix + hex.EncodeToString(sum[:addressDigestLen]), nil
}

// Sign signs payload with the key behind handle.
func (p *LocalKeyProvider) Sign(_ context.Context, payload []byte, handle domain.KeyHandle) ([]byte, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("refusing to sign an empty payload")
	}
	priv, err := privateKeyFromHandle(handle)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(priv, payload), nil
}

func privateKeyFromHandle(handle domain.KeyHandle) (ed25519.PrivateKey, error) {
	if len(handle) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid key material: expected a %d-byte seed, got %d bytes", ed25519.SeedSize, len(handle))
	}
	return ed25519.NewKeyFromSeed(handle), nil
}
