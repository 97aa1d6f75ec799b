package escrow

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/hyphalabs/crosschain-resolver/protocol/immutables"
)

// Factory derives escrow addresses client side. The factory deploys minimal
// proxies with the immutables hash as the CREATE2 salt, so the address of an
// escrow is known before any transaction touches the chain. The resolver
// relies on this to reference the destination escrow while it only exists as
// a pending parameter set.
type Factory struct {
	address common.Address
}

func NewFactory(address common.Address) *Factory {
	return &Factory{
		address: address,
	}
}

// SrcAddress computes the source-chain escrow address for the given
// immutables. proxyBytecodeHash is the keccak256 of the proxy creation code
// bound to the source escrow implementation.
func (f *Factory) SrcAddress(imm immutables.Immutables, proxyBytecodeHash common.Hash) (common.Address, error) {
	return f.deriveAddress(imm, proxyBytecodeHash)
}

// DstAddress derives the destination-side immutables from the source escrow
// deployment event data and computes the destination escrow address. The
// derived immutables are returned as well since the same value has to be
// submitted verbatim with every later withdraw/cancel call.
func (f *Factory) DstAddress(
	srcImm immutables.Immutables,
	complement immutables.DstComplement,
	taker common.Address,
	deployedAt uint64,
	proxyBytecodeHash common.Hash,
) (common.Address, immutables.Immutables, error) {
	dstImm := srcImm.
		WithComplement(complement).
		WithTaker(taker).
		WithDeployedAt(deployedAt)

	addr, err := f.deriveAddress(dstImm, proxyBytecodeHash)
	if err != nil {
		return common.Address{}, immutables.Immutables{}, err
	}

	return addr, dstImm, nil
}

func (f *Factory) deriveAddress(imm immutables.Immutables, proxyBytecodeHash common.Hash) (common.Address, error) {
	salt, err := imm.Hash()
	if err != nil {
		return common.Address{}, err
	}

	return crypto.CreateAddress2(f.address, salt, proxyBytecodeHash.Bytes()), nil
}

var interactionABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      { "internalType": "bytes32[]", "name": "proof", "type": "bytes32[]" },
      { "internalType": "uint256", "name": "idx", "type": "uint256" },
      { "internalType": "bytes32", "name": "secretHash", "type": "bytes32" }
    ],
    "name": "takerInteraction",
    "outputs": [],
    "stateMutability": "pure",
    "type": "function"
  }
]
`))

// MultipleFillInteraction encodes the proof material authorizing one partial
// fill of a multi-fill order into the taker interaction blob consumed by the
// order fill call.
func MultipleFillInteraction(proof []common.Hash, index uint64, secretHash common.Hash) ([]byte, error) {
	proofWords := make([][32]byte, len(proof))
	for i, p := range proof {
		proofWords[i] = p
	}

	return interactionABI.Methods["takerInteraction"].Inputs.Pack(
		proofWords,
		new(big.Int).SetUint64(index),
		[32]byte(secretHash),
	)
}
