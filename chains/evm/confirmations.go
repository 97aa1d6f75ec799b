// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/hyphalabs/crosschain-resolver/config"
)

const (
	CONFIRMATION_TIMEOUT = time.Minute * 10
)

type TokenPricer interface {
	TokenPrice(symbol string) (float64, error)
}

type ConfirmationClient interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethTypes.Receipt, error)
	LatestBlock() (*big.Int, error)
}

// Watcher scales confirmation depth with the USD value of a fill. Small
// fills proceed after a couple of blocks, large ones wait out deeper
// reorg risk before the destination side is funded.
type Watcher struct {
	clients map[uint64]ConfirmationClient
	pricer  TokenPricer
	tokens  config.TokenStore
	// chain id -> usd bucket -> confirmations
	confirmations map[uint64]map[uint64]uint64
	blocktime     time.Duration
}

func NewWatcher(
	clients map[uint64]ConfirmationClient,
	pricer TokenPricer,
	tokens config.TokenStore,
	confirmations map[uint64]map[uint64]uint64,
	blocktime time.Duration,
) *Watcher {
	return &Watcher{
		clients:       clients,
		pricer:        pricer,
		tokens:        tokens,
		confirmations: confirmations,
		blocktime:     blocktime,
	}
}

// WaitForTokenConfirmations blocks until the transaction has enough
// confirmations for the USD value of the transferred amount.
func (w *Watcher) WaitForTokenConfirmations(
	ctx context.Context,
	chainID uint64,
	txHash common.Hash,
	token common.Address,
	amount *big.Int,
) error {
	ctx, cancel := context.WithTimeout(ctx, CONFIRMATION_TIMEOUT)
	defer cancel()

	client, ok := w.clients[chainID]
	if !ok {
		return fmt.Errorf("no client for chain %d", chainID)
	}

	requiredConfirmations, err := w.minimalConfirmations(chainID, token, amount)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for confirmations of %s", txHash)
		default:
			txReceipt, err := client.TransactionReceipt(ctx, txHash)
			if err != nil || txReceipt == nil {
				time.Sleep(w.blocktime)
				continue
			}

			currentBlock, err := client.LatestBlock()
			if err != nil {
				log.Warn().Msgf("Error fetching current block: %v", err)
				time.Sleep(w.blocktime)
				continue
			}

			confirmations := new(big.Int).Sub(currentBlock, txReceipt.BlockNumber)
			if confirmations.Cmp(new(big.Int).SetUint64(requiredConfirmations)) != -1 {
				return nil
			}

			// nolint:gosec
			duration := time.Duration(uint64(w.blocktime) * (requiredConfirmations - confirmations.Uint64()))
			log.Debug().Msgf("Waiting for tx %s for %s", txHash, duration)
			time.Sleep(duration)
		}
	}
}

// minimalConfirmations maps the fill's USD value into the configured
// confirmation buckets.
func (w *Watcher) minimalConfirmations(chainID uint64, token common.Address, amount *big.Int) (uint64, error) {
	symbol, c, err := w.tokens.ConfigByAddress(chainID, token)
	if err != nil {
		return 0, err
	}

	price, err := w.pricer.TokenPrice(symbol)
	if err != nil {
		return 0, err
	}

	fillValue := new(big.Int)
	fillValue, _ = new(big.Float).Quo(
		new(big.Float).Mul(big.NewFloat(price), new(big.Float).SetInt(amount)),
		new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(c.Decimals)), nil)),
	).Int(fillValue)

	chainConfirmations, ok := w.confirmations[chainID]
	if !ok {
		return 0, fmt.Errorf("no confirmation buckets for chain %d", chainID)
	}

	buckets := make([]uint64, 0, len(chainConfirmations))
	for bucket := range chainConfirmations {
		buckets = append(buckets, bucket)
	}
	slices.Sort(buckets)
	for _, bucket := range buckets {
		if fillValue.Cmp(new(big.Int).SetUint64(bucket)) < 0 {
			return chainConfirmations[bucket], nil
		}
	}

	return 0, fmt.Errorf("fill value %s exceeds confirmation buckets", fillValue)
}
