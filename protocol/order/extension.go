package order

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var extensionABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "components": [
          { "internalType": "uint256", "name": "startTime", "type": "uint256" },
          { "internalType": "uint256", "name": "duration", "type": "uint256" },
          { "internalType": "uint256", "name": "initialRateBump", "type": "uint256" },
          {
            "components": [
              { "internalType": "uint16", "name": "delay", "type": "uint16" },
              { "internalType": "uint32", "name": "coefficient", "type": "uint32" }
            ],
            "internalType": "struct AuctionPoint[]",
            "name": "points",
            "type": "tuple[]"
          }
        ],
        "internalType": "struct AuctionDetails",
        "name": "auction",
        "type": "tuple"
      },
      {
        "components": [
          { "internalType": "address", "name": "resolver", "type": "address" },
          { "internalType": "uint64", "name": "allowFrom", "type": "uint64" }
        ],
        "internalType": "struct WhitelistEntry[]",
        "name": "whitelist",
        "type": "tuple[]"
      },
      {
        "components": [
          { "internalType": "bytes32", "name": "hashlock", "type": "bytes32" },
          { "internalType": "uint256", "name": "timelocks", "type": "uint256" },
          { "internalType": "uint256", "name": "srcChainId", "type": "uint256" },
          { "internalType": "uint256", "name": "dstChainId", "type": "uint256" },
          { "internalType": "address", "name": "dstToken", "type": "address" },
          { "internalType": "uint256", "name": "srcSafetyDeposit", "type": "uint256" },
          { "internalType": "uint256", "name": "dstSafetyDeposit", "type": "uint256" }
        ],
        "internalType": "struct EscrowParams",
        "name": "escrowParams",
        "type": "tuple"
      }
    ],
    "name": "extension",
    "outputs": [],
    "stateMutability": "pure",
    "type": "function"
  }
]
`))

type abiAuctionPoint struct {
	Delay       uint16
	Coefficient uint32
}

type abiAuction struct {
	StartTime       *big.Int
	Duration        *big.Int
	InitialRateBump *big.Int
	Points          []abiAuctionPoint
}

type abiWhitelistEntry struct {
	Resolver  common.Address
	AllowFrom uint64
}

type abiEscrowParams struct {
	Hashlock         [32]byte
	Timelocks        *big.Int
	SrcChainId       *big.Int
	DstChainId       *big.Int
	DstToken         common.Address
	SrcSafetyDeposit *big.Int
	DstSafetyDeposit *big.Int
}

// Extension encodes the auction curve, the resolver whitelist and the
// escrow parameters into the order extension blob the fill call carries.
// The limit order protocol validates auction and whitelist timing; here the
// blob is pass-through data committed to by the order salt.
func (o *Order) Extension() ([]byte, error) {
	points := make([]abiAuctionPoint, len(o.Auction.Points))
	for i, p := range o.Auction.Points {
		points[i] = abiAuctionPoint(p)
	}

	whitelist := make([]abiWhitelistEntry, len(o.Whitelist))
	for i, w := range o.Whitelist {
		whitelist[i] = abiWhitelistEntry{
			Resolver:  w.Address,
			AllowFrom: w.AllowFrom,
		}
	}

	return extensionABI.Methods["extension"].Inputs.Pack(
		abiAuction{
			StartTime:       new(big.Int).SetUint64(o.Auction.StartTime),
			Duration:        new(big.Int).SetUint64(o.Auction.Duration),
			InitialRateBump: new(big.Int).SetUint64(uint64(o.Auction.InitialRateBump)),
			Points:          points,
		},
		whitelist,
		abiEscrowParams{
			Hashlock:         o.Escrow.Hashlock.Hash(),
			Timelocks:        o.Escrow.Timelocks.Pack(),
			SrcChainId:       o.Escrow.SrcChainID,
			DstChainId:       o.Escrow.DstChainID,
			DstToken:         o.Escrow.DstToken,
			SrcSafetyDeposit: o.Escrow.SrcSafetyDeposit,
			DstSafetyDeposit: o.Escrow.DstSafetyDeposit,
		},
	)
}

// TakingAmountFor returns the destination amount a fill of fillAmount moves,
// proportional to the order terms with integer division truncation.
func (o *Order) TakingAmountFor(fillAmount *big.Int) *big.Int {
	amount := new(big.Int).Mul(o.Terms.TakingAmount, fillAmount)
	return amount.Div(amount, o.Terms.MakingAmount)
}
