package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ResolverABI is the on-chain resolver contract owning the order fill and
// escrow deployment entry points. deploySrc routes through the limit order
// protocol fill, deployDst funds the destination escrow directly.
var ResolverABI, _ = abi.JSON(strings.NewReader(`
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
      },
      {
        "components": [
          { "internalType": "uint256", "name": "salt", "type": "uint256" },
          { "internalType": "address", "name": "maker", "type": "address" },
          { "internalType": "address", "name": "receiver", "type": "address" },
          { "internalType": "address", "name": "makerAsset", "type": "address" },
          { "internalType": "address", "name": "takerAsset", "type": "address" },
          { "internalType": "uint256", "name": "makingAmount", "type": "uint256" },
          { "internalType": "uint256", "name": "takingAmount", "type": "uint256" },
          { "internalType": "uint256", "name": "makerTraits", "type": "uint256" }
        ],
        "internalType": "struct IOrderMixin.Order",
        "name": "order",
        "type": "tuple"
      },
      { "internalType": "bytes32", "name": "r", "type": "bytes32" },
      { "internalType": "bytes32", "name": "vs", "type": "bytes32" },
      { "internalType": "uint256", "name": "amount", "type": "uint256" },
      { "internalType": "uint256", "name": "takerTraits", "type": "uint256" },
      { "internalType": "bytes", "name": "args", "type": "bytes" }
    ],
    "name": "deploySrc",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  },
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
        "name": "dstImmutables",
        "type": "tuple"
      },
      { "internalType": "uint256", "name": "srcCancellationTimestamp", "type": "uint256" }
    ],
    "name": "deployDst",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "address[]", "name": "targets", "type": "address[]" },
      { "internalType": "bytes[]", "name": "arguments", "type": "bytes[]" }
    ],
    "name": "arbitraryCalls",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]
`))
