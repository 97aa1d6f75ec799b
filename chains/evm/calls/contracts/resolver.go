// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"

	"github.com/hyphalabs/crosschain-resolver/chains/evm/calls/consts"
	"github.com/hyphalabs/crosschain-resolver/protocol/immutables"
	"github.com/hyphalabs/crosschain-resolver/protocol/order"
)

// ResolverContract is the on-chain resolver owning the fill and deployment
// entry points. deploySrc fills the signed order through the limit order
// protocol, which deploys the source escrow as a post-interaction;
// deployDst funds and deploys the destination escrow directly.
type ResolverContract struct {
	contracts.Contract
}

func NewResolverContract(
	client client.Client,
	t transactor.Transactor,
	address common.Address,
) *ResolverContract {
	return &ResolverContract{
		Contract: contracts.NewContract(address, consts.ResolverABI, nil, client, t),
	}
}

// DeploySrc fills the order for fillAmount. The native value of opts must
// cover the source safety deposit. r/vs is the maker's compact signature.
func (c *ResolverContract) DeploySrc(
	srcImm immutables.Immutables,
	o *order.Order,
	r [32]byte,
	vs [32]byte,
	fillAmount *big.Int,
	takerTraits *big.Int,
	args []byte,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	salt, err := o.Salt()
	if err != nil {
		return nil, fmt.Errorf("encoding order salt: %w", err)
	}

	return c.ExecuteTransaction(
		"deploySrc",
		opts,
		packImmutables(srcImm),
		abiOrder{
			Salt:         salt,
			Maker:        o.Terms.Maker,
			Receiver:     o.Terms.Receiver,
			MakerAsset:   o.Terms.MakerAsset,
			TakerAsset:   o.Terms.TakerAsset,
			MakingAmount: o.Terms.MakingAmount,
			TakingAmount: o.Terms.TakingAmount,
			MakerTraits:  o.MakerTraits(),
		},
		r,
		vs,
		fillAmount,
		takerTraits,
		args,
	)
}

// DeployDst deploys the destination escrow. The native value of opts must
// cover the destination safety deposit, and the resolver contract must hold
// sufficient token allowance for the escrow amount.
func (c *ResolverContract) DeployDst(
	dstImm immutables.Immutables,
	srcCancellationTimestamp *big.Int,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"deployDst",
		opts,
		packImmutables(dstImm),
		srcCancellationTimestamp,
	)
}

// ArbitraryCalls forwards calls through the resolver contract, which is the
// taker recorded in the escrow immutables and therefore the only address
// allowed to act during private windows.
func (c *ResolverContract) ArbitraryCalls(
	targets []common.Address,
	arguments [][]byte,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	return c.ExecuteTransaction("arbitraryCalls", opts, targets, arguments)
}
