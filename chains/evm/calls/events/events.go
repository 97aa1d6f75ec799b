// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/hyphalabs/crosschain-resolver/protocol/hashlock"
	"github.com/hyphalabs/crosschain-resolver/protocol/immutables"
	"github.com/hyphalabs/crosschain-resolver/protocol/timelock"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	SrcEscrowCreatedSig EventSig = "SrcEscrowCreated((bytes32,bytes32,address,address,address,uint256,uint256,uint256),(address,uint256,address,uint256,uint256))"
	DstEscrowCreatedSig EventSig = "DstEscrowCreated(address,bytes32,address)"
)

// SrcEscrowCreated is the source escrow deployment event. It carries the
// immutables the escrow was actually deployed with plus the complement
// needed to derive the destination side.
type SrcEscrowCreated struct {
	SrcImmutables struct {
		OrderHash     [32]byte
		Hashlock      [32]byte
		Maker         common.Address
		Taker         common.Address
		Token         common.Address
		Amount        *big.Int
		SafetyDeposit *big.Int
		Timelocks     *big.Int
	}
	DstImmutablesComplement struct {
		Maker         common.Address
		Amount        *big.Int
		Token         common.Address
		SafetyDeposit *big.Int
		ChainId       *big.Int
	}

	// BlockTimestamp of the deployment transaction, the anchor for the
	// source escrow timelocks.
	BlockTimestamp uint64
}

// Immutables converts the raw event payload into the typed source-side
// immutables, anchored at the deployment timestamp.
func (e *SrcEscrowCreated) Immutables() (immutables.Immutables, error) {
	timelocks, err := timelock.Unpack(e.SrcImmutables.Timelocks)
	if err != nil {
		return immutables.Immutables{}, err
	}

	return immutables.Immutables{
		OrderHash:     e.SrcImmutables.OrderHash,
		Hashlock:      hashlock.Lock(e.SrcImmutables.Hashlock),
		Maker:         e.SrcImmutables.Maker,
		Taker:         e.SrcImmutables.Taker,
		Token:         e.SrcImmutables.Token,
		Amount:        e.SrcImmutables.Amount,
		SafetyDeposit: e.SrcImmutables.SafetyDeposit,
		Timelocks:     timelocks.WithDeployedAt(e.BlockTimestamp),
	}, nil
}

func (e *SrcEscrowCreated) Complement() immutables.DstComplement {
	return immutables.DstComplement{
		Maker:         e.DstImmutablesComplement.Maker,
		Amount:        e.DstImmutablesComplement.Amount,
		Token:         e.DstImmutablesComplement.Token,
		SafetyDeposit: e.DstImmutablesComplement.SafetyDeposit,
		ChainID:       e.DstImmutablesComplement.ChainId,
	}
}

// DstEscrowCreated is the destination escrow deployment event.
type DstEscrowCreated struct {
	Escrow   common.Address
	Hashlock [32]byte
	Taker    common.Address

	BlockTimestamp uint64
}
