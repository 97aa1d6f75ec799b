// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"

	"github.com/hyphalabs/crosschain-resolver/chains/evm/calls/consts"
)

// EscrowFactoryContract reads the factory state needed for client-side
// address derivation. Deployment itself goes through the resolver contract,
// never directly through the factory.
type EscrowFactoryContract struct {
	contracts.Contract
}

func NewEscrowFactoryContract(
	client client.Client,
	address common.Address,
) *EscrowFactoryContract {
	return &EscrowFactoryContract{
		Contract: contracts.NewContract(address, consts.EscrowFactoryABI, nil, client, nil),
	}
}

// SrcProxyBytecodeHash returns the creation code hash of the source escrow
// proxy, the second input of the CREATE2 address derivation.
func (c *EscrowFactoryContract) SrcProxyBytecodeHash() (common.Hash, error) {
	res, err := c.CallContract("SRC_PROXY_BYTECODE_HASH")
	if err != nil {
		return common.Hash{}, err
	}

	out := *abi.ConvertType(res[0], new([32]byte)).(*[32]byte)
	return common.Hash(out), nil
}

// DstProxyBytecodeHash returns the creation code hash of the destination
// escrow proxy.
func (c *EscrowFactoryContract) DstProxyBytecodeHash() (common.Hash, error) {
	res, err := c.CallContract("DST_PROXY_BYTECODE_HASH")
	if err != nil {
		return common.Hash{}, err
	}

	out := *abi.ConvertType(res[0], new([32]byte)).(*[32]byte)
	return common.Hash(out), nil
}
