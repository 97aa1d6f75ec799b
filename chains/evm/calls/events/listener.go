// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/hyphalabs/crosschain-resolver/chains/evm/calls/consts"
)

type ChainClient interface {
	FetchEventLogs(ctx context.Context, contractAddress common.Address, event string, startBlock *big.Int, endBlock *big.Int) ([]ethTypes.Log, error)
	WaitAndReturnTxReceipt(h common.Hash) (*ethTypes.Receipt, error)
	LatestBlock() (*big.Int, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*ethTypes.Block, error)
}

// Listener reads escrow deployment events from the factory contract. Reads
// are confirmation-gated polls: an event only counts once its block sits at
// least the configured confirmation depth below the chain head, so a reorg
// cannot hand the resolver immutables that never make it on chain.
type Listener struct {
	client        ChainClient
	confirmations *big.Int
	retryInterval time.Duration
}

func NewListener(client ChainClient, confirmations uint64, retryInterval time.Duration) *Listener {
	return &Listener{
		client:        client,
		confirmations: new(big.Int).SetUint64(confirmations),
		retryInterval: retryInterval,
	}
}

// WaitForSrcEscrowCreated polls for the SrcEscrowCreated event matching
// orderHash, starting at startBlock. It blocks until the event is durably
// observable or ctx expires.
func (l *Listener) WaitForSrcEscrowCreated(
	ctx context.Context,
	factory common.Address,
	orderHash common.Hash,
	startBlock *big.Int,
) (*SrcEscrowCreated, error) {
	var event *SrcEscrowCreated
	err := l.poll(ctx, factory, string(SrcEscrowCreatedSig), startBlock, func(logs []ethTypes.Log) (bool, error) {
		for _, lg := range logs {
			e, err := l.unpackSrcEscrowCreated(lg)
			if err != nil {
				log.Warn().Err(err).Msgf("Failed unpacking src escrow event in tx %s", lg.TxHash)
				continue
			}

			if common.Hash(e.SrcImmutables.OrderHash) != orderHash {
				continue
			}

			ts, err := l.blockTimestamp(ctx, lg.BlockNumber)
			if err != nil {
				return false, err
			}

			e.BlockTimestamp = ts
			event = e
			return true, nil
		}

		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// WaitForDstEscrowCreated polls for the DstEscrowCreated event matching
// the given hashlock.
func (l *Listener) WaitForDstEscrowCreated(
	ctx context.Context,
	factory common.Address,
	lock common.Hash,
	startBlock *big.Int,
) (*DstEscrowCreated, error) {
	var event *DstEscrowCreated
	err := l.poll(ctx, factory, string(DstEscrowCreatedSig), startBlock, func(logs []ethTypes.Log) (bool, error) {
		for _, lg := range logs {
			e, err := l.unpackDstEscrowCreated(lg)
			if err != nil {
				log.Warn().Err(err).Msgf("Failed unpacking dst escrow event in tx %s", lg.TxHash)
				continue
			}

			if common.Hash(e.Hashlock) != lock {
				continue
			}

			ts, err := l.blockTimestamp(ctx, lg.BlockNumber)
			if err != nil {
				return false, err
			}

			e.BlockTimestamp = ts
			event = e
			return true, nil
		}

		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (l *Listener) poll(
	ctx context.Context,
	contract common.Address,
	event string,
	startBlock *big.Int,
	match func([]ethTypes.Log) (bool, error),
) error {
	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		head, err := l.client.LatestBlock()
		if err != nil {
			return fmt.Errorf("fetching latest block: %w", err)
		}

		endBlock := new(big.Int).Sub(head, l.confirmations)
		if endBlock.Cmp(startBlock) >= 0 {
			logs, err := l.client.FetchEventLogs(ctx, contract, event, startBlock, endBlock)
			if err != nil {
				return fmt.Errorf("fetching %s logs: %w", event, err)
			}

			found, err := match(logs)
			if err != nil {
				return err
			}
			if found {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s: %w", event, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *Listener) blockTimestamp(ctx context.Context, blockNumber uint64) (uint64, error) {
	block, err := l.client.BlockByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return 0, err
	}

	return block.Time(), nil
}

func (l *Listener) unpackSrcEscrowCreated(lg ethTypes.Log) (*SrcEscrowCreated, error) {
	var e SrcEscrowCreated
	err := consts.EscrowFactoryABI.UnpackIntoInterface(&e, "SrcEscrowCreated", lg.Data)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (l *Listener) unpackDstEscrowCreated(lg ethTypes.Log) (*DstEscrowCreated, error) {
	var e DstEscrowCreated
	err := consts.EscrowFactoryABI.UnpackIntoInterface(&e, "DstEscrowCreated", lg.Data)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
