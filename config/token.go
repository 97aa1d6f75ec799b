package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TokenConfig describes one ERC-20 the resolver is willing to escrow.
type TokenConfig struct {
	Address  common.Address
	Decimals uint8
}

// TokenStore resolves configured tokens across chains. The map is keyed by
// chain id, then by the symbol used for price lookups.
type TokenStore struct {
	Tokens map[uint64]map[string]TokenConfig
}

// ConfigByAddress finds the symbol and config of a token by its on-chain
// address. Fills in tokens outside the configuration fail through the
// returned error.
func (s *TokenStore) ConfigByAddress(chainID uint64, address common.Address) (string, TokenConfig, error) {
	chainTokens, ok := s.Tokens[chainID]
	if !ok {
		return "", TokenConfig{}, fmt.Errorf("chain %d has no configured tokens", chainID)
	}

	for symbol, token := range chainTokens {
		if token.Address == address {
			return symbol, token, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("token %s not configured on chain %d", address.Hex(), chainID)
}
