package domain

// TokenRecord describes a token issuance. Immutable after creation.
type TokenRecord struct {
	Issuer      string `json:"issuer"`
	TokenName   string `json:"token_name"`
	TotalSupply int64  `json:"total_supply"`
	Timestamp   int64  `json:"timestamp"` // Unix seconds
}

// TokenTransferRecord describes a transfer of a previously issued token.
type TokenTransferRecord struct {
	Token     TokenRecord `json:"token"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	Amount    int64       `json:"amount"`
	Timestamp int64       `json:"timestamp"` // Unix seconds
}
