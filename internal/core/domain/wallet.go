package domain

// KeyHandle is an opaque reference to private key material. It is only
// meaningful to the KeyProvider that issued it and is never serialized.
type KeyHandle []byte

// String redacts the handle so it cannot leak through logs.
func (KeyHandle) String() string {
	return "KeyHandle(redacted)"
}

// Wallet owns a single key handle and the address derived from it.
// Immutable after initialization.
type Wallet struct {
	KeyHandle KeyHandle `json:"-"`
	Address   string    `json:"address"`
}
