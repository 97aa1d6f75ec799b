package privacy

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/hyphalabs/crosschain-resolver/protocol/hashlock"
	"github.com/hyphalabs/crosschain-resolver/protocol/order"
	"github.com/hyphalabs/crosschain-resolver/protocol/timelock"
)

// PayloadVersion tags the current payload layout. Decoding rejects any
// other version outright instead of guessing at field offsets.
const PayloadVersion = uint8(1)

var (
	ErrMalformedPayload    = errors.New("malformed order payload")
	ErrUnsupportedPayload  = errors.New("unsupported order payload version")
	ErrMultipleFillPayload = errors.New("multiple fill orders cannot be committed")
)

var payloadABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      { "internalType": "uint8", "name": "version", "type": "uint8" },
      {
        "components": [
          { "internalType": "address", "name": "escrowFactory", "type": "address" },
          { "internalType": "address", "name": "maker", "type": "address" },
          { "internalType": "address", "name": "receiver", "type": "address" },
          { "internalType": "address", "name": "makerAsset", "type": "address" },
          { "internalType": "address", "name": "takerAsset", "type": "address" },
          { "internalType": "uint256", "name": "makingAmount", "type": "uint256" },
          { "internalType": "uint256", "name": "takingAmount", "type": "uint256" },
          { "internalType": "uint256", "name": "salt", "type": "uint256" },
          { "internalType": "bytes32", "name": "hashlock", "type": "bytes32" },
          { "internalType": "uint256", "name": "timelocks", "type": "uint256" },
          { "internalType": "uint256", "name": "srcChainId", "type": "uint256" },
          { "internalType": "uint256", "name": "dstChainId", "type": "uint256" },
          { "internalType": "address", "name": "dstToken", "type": "address" },
          { "internalType": "uint256", "name": "srcSafetyDeposit", "type": "uint256" },
          { "internalType": "uint256", "name": "dstSafetyDeposit", "type": "uint256" },
          {
            "components": [
              { "internalType": "uint64", "name": "startTime", "type": "uint64" },
              { "internalType": "uint64", "name": "duration", "type": "uint64" },
              { "internalType": "uint32", "name": "initialRateBump", "type": "uint32" },
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
              { "internalType": "address", "name": "addr", "type": "address" },
              { "internalType": "uint64", "name": "allowFrom", "type": "uint64" }
            ],
            "internalType": "struct WhitelistEntry[]",
            "name": "whitelist",
            "type": "tuple[]"
          },
          { "internalType": "bool", "name": "allowPartialFills", "type": "bool" },
          { "internalType": "bool", "name": "allowMultipleFills", "type": "bool" },
          { "internalType": "uint256", "name": "nonce", "type": "uint256" },
          { "internalType": "bytes", "name": "signature", "type": "bytes" },
          { "internalType": "uint256", "name": "fillAmount", "type": "uint256" }
        ],
        "internalType": "struct OrderPayload",
        "name": "payload",
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

type abiAuctionPoint struct {
	Delay       uint16
	Coefficient uint32
}

type abiAuction struct {
	StartTime       uint64
	Duration        uint64
	InitialRateBump uint32
	Points          []abiAuctionPoint
}

type abiWhitelistEntry struct {
	Addr      common.Address
	AllowFrom uint64
}

type abiPayload struct {
	EscrowFactory      common.Address
	Maker              common.Address
	Receiver           common.Address
	MakerAsset         common.Address
	TakerAsset         common.Address
	MakingAmount       *big.Int
	TakingAmount       *big.Int
	Salt               *big.Int
	Hashlock           [32]byte
	Timelocks          *big.Int
	SrcChainId         *big.Int
	DstChainId         *big.Int
	DstToken           common.Address
	SrcSafetyDeposit   *big.Int
	DstSafetyDeposit   *big.Int
	Auction            abiAuction
	Whitelist          []abiWhitelistEntry
	AllowPartialFills  bool
	AllowMultipleFills bool
	Nonce              *big.Int
	Signature          []byte
	FillAmount         *big.Int
}

// EncodeOrderPayload packs everything needed to fill the order later into
// the committed byte blob.
func EncodeOrderPayload(o *order.Order, sig []byte, fillAmount *big.Int) ([]byte, error) {
	points := make([]abiAuctionPoint, len(o.Auction.Points))
	for i, p := range o.Auction.Points {
		points[i] = abiAuctionPoint{Delay: p.Delay, Coefficient: p.Coefficient}
	}
	whitelist := make([]abiWhitelistEntry, len(o.Whitelist))
	for i, e := range o.Whitelist {
		whitelist[i] = abiWhitelistEntry{Addr: e.Address, AllowFrom: e.AllowFrom}
	}

	return payloadABI.Methods["encode"].Inputs.Pack(PayloadVersion, abiPayload{
		EscrowFactory:    o.EscrowFactory,
		Maker:            o.Terms.Maker,
		Receiver:         o.Terms.Receiver,
		MakerAsset:       o.Terms.MakerAsset,
		TakerAsset:       o.Terms.TakerAsset,
		MakingAmount:     o.Terms.MakingAmount,
		TakingAmount:     o.Terms.TakingAmount,
		Salt:             o.Terms.Salt,
		Hashlock:         o.Escrow.Hashlock,
		Timelocks:        o.Escrow.Timelocks.Pack(),
		SrcChainId:       o.Escrow.SrcChainID,
		DstChainId:       o.Escrow.DstChainID,
		DstToken:         o.Escrow.DstToken,
		SrcSafetyDeposit: o.Escrow.SrcSafetyDeposit,
		DstSafetyDeposit: o.Escrow.DstSafetyDeposit,
		Auction: abiAuction{
			StartTime:       o.Auction.StartTime,
			Duration:        o.Auction.Duration,
			InitialRateBump: o.Auction.InitialRateBump,
			Points:          points,
		},
		Whitelist:          whitelist,
		AllowPartialFills:  o.Policy.AllowPartialFills,
		AllowMultipleFills: o.Policy.AllowMultipleFills,
		Nonce:              o.Policy.Nonce,
		Signature:          sig,
		FillAmount:         fillAmount,
	})
}

// DecodeOrderPayload decodes the committed blob back into an order plus its
// fill parameters. It fails closed: unknown versions, malformed encodings
// and orders violating the construction invariants are all rejected.
func DecodeOrderPayload(data []byte) (*order.Order, []byte, *big.Int, error) {
	res, err := payloadABI.Methods["encode"].Inputs.Unpack(data)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}

	version, ok := res[0].(uint8)
	if !ok || version != PayloadVersion {
		return nil, nil, nil, ErrUnsupportedPayload
	}

	raw := abi.ConvertType(res[1], new(abiPayload)).(*abiPayload)

	// Delayed execution carries no merkle proof material, so a multi-fill
	// order could be revealed but never executed. Rejecting here keeps the
	// commitment intact instead of burning it on an unfillable order.
	if raw.AllowMultipleFills {
		return nil, nil, nil, ErrMultipleFillPayload
	}

	timelocks, err := timelock.Unpack(raw.Timelocks)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}

	points := make([]order.AuctionPoint, len(raw.Auction.Points))
	for i, p := range raw.Auction.Points {
		points[i] = order.AuctionPoint{Delay: p.Delay, Coefficient: p.Coefficient}
	}
	whitelist := make([]order.WhitelistEntry, len(raw.Whitelist))
	for i, e := range raw.Whitelist {
		whitelist[i] = order.WhitelistEntry{Address: e.Addr, AllowFrom: e.AllowFrom}
	}

	o, err := order.New(
		raw.EscrowFactory,
		order.Terms{
			Maker:        raw.Maker,
			Receiver:     raw.Receiver,
			MakerAsset:   raw.MakerAsset,
			TakerAsset:   raw.TakerAsset,
			MakingAmount: raw.MakingAmount,
			TakingAmount: raw.TakingAmount,
			Salt:         raw.Salt,
		},
		order.EscrowExtension{
			Hashlock:         hashlock.Lock(raw.Hashlock),
			Timelocks:        timelocks,
			SrcChainID:       raw.SrcChainId,
			DstChainID:       raw.DstChainId,
			DstToken:         raw.DstToken,
			SrcSafetyDeposit: raw.SrcSafetyDeposit,
			DstSafetyDeposit: raw.DstSafetyDeposit,
		},
		order.AuctionDetails{
			StartTime:       raw.Auction.StartTime,
			Duration:        raw.Auction.Duration,
			InitialRateBump: raw.Auction.InitialRateBump,
			Points:          points,
		},
		whitelist,
		order.FillPolicy{
			AllowPartialFills:  raw.AllowPartialFills,
			AllowMultipleFills: raw.AllowMultipleFills,
			Nonce:              raw.Nonce,
		},
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}

	return o, raw.Signature, raw.FillAmount, nil
}
