// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hyphalabs/crosschain-resolver/protocol/immutables"
)

// wire shapes packed into call arguments by the contract ABIs

type abiImmutables struct {
	OrderHash     [32]byte
	Hashlock      [32]byte
	Maker         common.Address
	Taker         common.Address
	Token         common.Address
	Amount        *big.Int
	SafetyDeposit *big.Int
	Timelocks     *big.Int
}

func packImmutables(imm immutables.Immutables) abiImmutables {
	return abiImmutables{
		OrderHash:     imm.OrderHash,
		Hashlock:      imm.Hashlock.Hash(),
		Maker:         imm.Maker,
		Taker:         imm.Taker,
		Token:         imm.Token,
		Amount:        imm.Amount,
		SafetyDeposit: imm.SafetyDeposit,
		Timelocks:     imm.Timelocks.Pack(),
	}
}

type abiOrder struct {
	Salt         *big.Int
	Maker        common.Address
	Receiver     common.Address
	MakerAsset   common.Address
	TakerAsset   common.Address
	MakingAmount *big.Int
	TakingAmount *big.Int
	MakerTraits  *big.Int
}
