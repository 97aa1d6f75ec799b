package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var EscrowFactoryABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [],
    "name": "SRC_PROXY_BYTECODE_HASH",
    "outputs": [
      { "internalType": "bytes32", "name": "", "type": "bytes32" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "DST_PROXY_BYTECODE_HASH",
    "outputs": [
      { "internalType": "bytes32", "name": "", "type": "bytes32" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "anonymous": false,
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
        "indexed": false,
        "internalType": "struct IBaseEscrow.Immutables",
        "name": "srcImmutables",
        "type": "tuple"
      },
      {
        "components": [
          { "internalType": "address", "name": "maker", "type": "address" },
          { "internalType": "uint256", "name": "amount", "type": "uint256" },
          { "internalType": "address", "name": "token", "type": "address" },
          { "internalType": "uint256", "name": "safetyDeposit", "type": "uint256" },
          { "internalType": "uint256", "name": "chainId", "type": "uint256" }
        ],
        "indexed": false,
        "internalType": "struct IEscrowFactory.DstImmutablesComplement",
        "name": "dstImmutablesComplement",
        "type": "tuple"
      }
    ],
    "name": "SrcEscrowCreated",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      { "indexed": false, "internalType": "address", "name": "escrow", "type": "address" },
      { "indexed": false, "internalType": "bytes32", "name": "hashlock", "type": "bytes32" },
      { "indexed": false, "internalType": "address", "name": "taker", "type": "address" }
    ],
    "name": "DstEscrowCreated",
    "type": "event"
  }
]
`))

var EscrowABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      { "internalType": "bytes32", "name": "secret", "type": "bytes32" },
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
    "name": "withdraw",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "secret", "type": "bytes32" },
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
    "name": "publicWithdraw",
    "outputs": [],
    "stateMutability": "nonpayable",
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
        "name": "immutables",
        "type": "tuple"
      }
    ],
    "name": "cancel",
    "outputs": [],
    "stateMutability": "nonpayable",
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
        "name": "immutables",
        "type": "tuple"
      }
    ],
    "name": "publicCancel",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "address", "name": "token", "type": "address" },
      { "internalType": "uint256", "name": "amount", "type": "uint256" },
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
    "name": "rescueFunds",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]
`))
