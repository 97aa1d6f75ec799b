package immutables

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/hyphalabs/crosschain-resolver/protocol/hashlock"
	"github.com/hyphalabs/crosschain-resolver/protocol/timelock"
)

// Immutables is the fixed parameter tuple of one escrow instance. The
// escrow address is a pure function of this tuple, so every transformation
// returns a new value instead of mutating in place.
type Immutables struct {
	OrderHash     common.Hash
	Hashlock      hashlock.Lock
	Maker         common.Address
	Taker         common.Address
	Token         common.Address
	Amount        *big.Int
	SafetyDeposit *big.Int
	Timelocks     timelock.Timelocks
}

// DstComplement carries the destination-chain specific fields emitted
// alongside the source escrow deployment. Together with the source
// immutables it fully determines the destination escrow.
type DstComplement struct {
	Maker         common.Address
	Amount        *big.Int
	Token         common.Address
	SafetyDeposit *big.Int
	ChainID       *big.Int
}

var immutablesABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "components": [
          { "internalType": "bytes32", "name": "orderHash", "type": "bytes32" },
          { "internalType": "bytes32", "name": "hashlock", "type": "bytes32" },
          { "internalType": "address", "name": "maker", "type": "address" },
          { "internalType": "address", "name": "taker", "type": "address" },
          { "internalType": "address", "name": "token", "type": "address" },
          { "internalType": "uint256", "name": "amount", "type": "uint256" },
          { "internalType": "uint256", "name": "safetyDeposit", "type": "uint256" },
          { "internalType": "uint256", "name": "timelocks", "type": "uint256" }
        ],
        "internalType": "struct IBaseEscrow.Immutables",
        "name": "immutables",
        "type": "tuple"
      }
    ],
    "name": "encode",
    "outputs": [],
    "stateMutability": "pure",
    "type": "function"
  }
]
`))

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

// Encode returns the ABI tuple encoding consumed by the escrow contracts
// and used as the address-derivation salt preimage.
func (i Immutables) Encode() ([]byte, error) {
	return immutablesABI.Methods["encode"].Inputs.Pack(abiImmutables{
		OrderHash:     i.OrderHash,
		Hashlock:      i.Hashlock.Hash(),
		Maker:         i.Maker,
		Taker:         i.Taker,
		Token:         i.Token,
		Amount:        i.Amount,
		SafetyDeposit: i.SafetyDeposit,
		Timelocks:     i.Timelocks.Pack(),
	})
}

// Hash is the keccak256 of the ABI tuple encoding.
func (i Immutables) Hash() (common.Hash, error) {
	encoded, err := i.Encode()
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash(encoded), nil
}

// WithComplement derives the destination-side immutables from the source
// side plus the emitted complement.
func (i Immutables) WithComplement(c DstComplement) Immutables {
	i.Maker = c.Maker
	i.Token = c.Token
	i.Amount = c.Amount
	i.SafetyDeposit = c.SafetyDeposit
	return i
}

func (i Immutables) WithTaker(taker common.Address) Immutables {
	i.Taker = taker
	return i
}

func (i Immutables) WithDeployedAt(ts uint64) Immutables {
	i.Timelocks = i.Timelocks.WithDeployedAt(ts)
	return i
}
