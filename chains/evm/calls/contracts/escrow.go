// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"

	"github.com/hyphalabs/crosschain-resolver/chains/evm/calls/consts"
	"github.com/hyphalabs/crosschain-resolver/protocol/immutables"
)

// EscrowContract submits withdraw/cancel/rescue calls against one deployed
// escrow instance. Every call carries the full immutables tuple since the
// escrow stores only its hash.
type EscrowContract struct {
	contracts.Contract
}

func NewEscrowContract(
	client client.Client,
	t transactor.Transactor,
	address common.Address,
) *EscrowContract {
	return &EscrowContract{
		Contract: contracts.NewContract(address, consts.EscrowABI, nil, client, t),
	}
}

func (c *EscrowContract) Withdraw(
	secret common.Hash,
	imm immutables.Immutables,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	return c.ExecuteTransaction("withdraw", opts, [32]byte(secret), packImmutables(imm))
}

func (c *EscrowContract) PublicWithdraw(
	secret common.Hash,
	imm immutables.Immutables,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	return c.ExecuteTransaction("publicWithdraw", opts, [32]byte(secret), packImmutables(imm))
}

func (c *EscrowContract) Cancel(
	imm immutables.Immutables,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	return c.ExecuteTransaction("cancel", opts, packImmutables(imm))
}

func (c *EscrowContract) PublicCancel(
	imm immutables.Immutables,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	return c.ExecuteTransaction("publicCancel", opts, packImmutables(imm))
}

// RescueFunds recovers tokens stuck on a resolved escrow. Callable by the
// taker only after the rescue delay the implementation enforces.
func (c *EscrowContract) RescueFunds(
	token common.Address,
	amount *big.Int,
	imm immutables.Immutables,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	return c.ExecuteTransaction("rescueFunds", opts, token, amount, packImmutables(imm))
}
