// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"math/big"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/hyphalabs/crosschain-resolver/config"
	"github.com/hyphalabs/crosschain-resolver/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	EscrowFactory common.Address
	Resolver      common.Address

	Tokens map[string]config.TokenConfig
	// usd bucket -> confirmations
	ConfirmationsByValue map[uint64]uint64

	BlockInterval      *big.Int
	BlockRetryInterval time.Duration

	MaxGasPrice           *big.Int
	GasIncreasePercentage *big.Int
}

type RawTokenConfig struct {
	Address  string `mapstructure:"address"`
	Decimals uint8  `mapstructure:"decimals"`
}

type RawConfirmationConfig struct {
	MaxAmountUSD  uint64 `mapstructure:"maxAmountUSD"`
	Confirmations uint64 `mapstructure:"confirmations"`
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`

	EscrowFactory string `mapstructure:"escrowFactory"`
	Resolver      string `mapstructure:"resolver"`

	Tokens        map[string]RawTokenConfig `mapstructure:"tokens"`
	Confirmations []RawConfirmationConfig   `mapstructure:"confirmations"`

	BlockInterval      int64  `mapstructure:"blockInterval" default:"5"`
	BlockRetryInterval uint64 `mapstructure:"blockRetryInterval" default:"5"`

	MaxGasPrice           int64 `mapstructure:"maxGasPrice" default:"500000000000"`
	GasIncreasePercentage int64 `mapstructure:"gasIncreasePercentage" default:"15"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if !common.IsHexAddress(c.EscrowFactory) {
		return fmt.Errorf("invalid escrowFactory address for chain %v", *c.Id)
	}
	if !common.IsHexAddress(c.Resolver) {
		return fmt.Errorf("invalid resolver address for chain %v", *c.Id)
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]config.TokenConfig)
	for symbol, t := range c.Tokens {
		if !common.IsHexAddress(t.Address) {
			return nil, fmt.Errorf("invalid address for token %s", symbol)
		}

		tokens[symbol] = config.TokenConfig{
			Address:  common.HexToAddress(t.Address),
			Decimals: t.Decimals,
		}
	}

	confirmations := make(map[uint64]uint64)
	for _, confirmation := range c.Confirmations {
		confirmations[confirmation.MaxAmountUSD] = confirmation.Confirmations
	}

	return &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,

		EscrowFactory: common.HexToAddress(c.EscrowFactory),
		Resolver:      common.HexToAddress(c.Resolver),

		Tokens:               tokens,
		ConfirmationsByValue: confirmations,

		// nolint:gosec
		BlockRetryInterval: time.Duration(c.BlockRetryInterval) * time.Second,
		BlockInterval:      big.NewInt(c.BlockInterval),

		MaxGasPrice:           big.NewInt(c.MaxGasPrice),
		GasIncreasePercentage: big.NewInt(c.GasIncreasePercentage),
	}, nil
}
