package order

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/hyphalabs/crosschain-resolver/protocol/hashlock"
	"github.com/hyphalabs/crosschain-resolver/protocol/timelock"
)

const (
	DOMAIN_NAME = "CrossChainEscrowOrder"
	VERSION     = "1"
)

var ErrMultipleFillsLock = errors.New("order: allowMultipleFills requires a merkle hashlock")

// Terms are the economic terms of the swap signed by the maker.
type Terms struct {
	Maker        common.Address
	Receiver     common.Address
	MakerAsset   common.Address
	TakerAsset   common.Address
	MakingAmount *big.Int
	TakingAmount *big.Int
	Salt         *big.Int
}

// EscrowExtension carries the escrow parameters bound into the order
// extension: the hashlock commitment, the timelock schedule and the safety
// deposits both escrows have to be funded with.
type EscrowExtension struct {
	Hashlock         hashlock.Lock
	Timelocks        timelock.Timelocks
	SrcChainID       *big.Int
	DstChainID       *big.Int
	DstToken         common.Address
	SrcSafetyDeposit *big.Int
	DstSafetyDeposit *big.Int
}

// AuctionDetails describe the dutch auction rate curve the fill price
// follows. Pass-through data for the limit order protocol, not validated
// here.
type AuctionDetails struct {
	StartTime       uint64
	Duration        uint64
	InitialRateBump uint32
	Points          []AuctionPoint
}

type AuctionPoint struct {
	Delay       uint16
	Coefficient uint32
}

// WhitelistEntry allows one resolver to fill the order starting at
// AllowFrom.
type WhitelistEntry struct {
	Address   common.Address
	AllowFrom uint64
}

// FillPolicy are the maker's fill flags, packed into maker traits.
type FillPolicy struct {
	AllowPartialFills  bool
	AllowMultipleFills bool
	Nonce              *big.Int
}

// Order is the cross-chain order aggregate. Construct with New so the
// hashlock mode and timelock schedule are validated against the fill policy.
type Order struct {
	EscrowFactory common.Address
	Terms         Terms
	Escrow        EscrowExtension
	Auction       AuctionDetails
	Whitelist     []WhitelistEntry
	Policy        FillPolicy
}

func New(
	escrowFactory common.Address,
	terms Terms,
	escrowExt EscrowExtension,
	auction AuctionDetails,
	whitelist []WhitelistEntry,
	policy FillPolicy,
) (*Order, error) {
	// A merkle lock always carries the marker bit, so a multi-fill order
	// without it cannot be right. The reverse is not checkable: a raw
	// secret hash sets the same bit for half of all secrets, so a
	// single-fill order accepts any non-zero lock and the fill policy
	// alone decides how the lock is interpreted.
	if policy.AllowMultipleFills && !escrowExt.Hashlock.IsMultipleFill() {
		return nil, ErrMultipleFillsLock
	}
	if err := escrowExt.Timelocks.Validate(); err != nil {
		return nil, fmt.Errorf("order: %w", err)
	}

	return &Order{
		EscrowFactory: escrowFactory,
		Terms:         terms,
		Escrow:        escrowExt,
		Auction:       auction,
		Whitelist:     whitelist,
		Policy:        policy,
	}, nil
}

// Hash calculates the EIP-712 hash the maker signs. The domain binds to the
// source chain ID, so the same order content signs to different hashes on
// different chains and a signature cannot be replayed across chains.
func (o *Order) Hash(chainID *big.Int) (common.Hash, error) {
	extension, err := o.Extension()
	if err != nil {
		return common.Hash{}, err
	}

	msg := apitypes.TypedDataMessage{
		"salt":         o.salt(extension),
		"maker":        o.Terms.Maker.Hex(),
		"receiver":     o.Terms.Receiver.Hex(),
		"makerAsset":   o.Terms.MakerAsset.Hex(),
		"takerAsset":   o.Terms.TakerAsset.Hex(),
		"makingAmount": o.Terms.MakingAmount,
		"takingAmount": o.Terms.TakingAmount,
		"makerTraits":  o.MakerTraits(),
	}

	cid := math.HexOrDecimal256(*chainID)
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Order": []apitypes.Type{
				{Name: "salt", Type: "uint256"},
				{Name: "maker", Type: "address"},
				{Name: "receiver", Type: "address"},
				{Name: "makerAsset", Type: "address"},
				{Name: "takerAsset", Type: "address"},
				{Name: "makingAmount", Type: "uint256"},
				{Name: "takingAmount", Type: "uint256"},
				{Name: "makerTraits", Type: "uint256"},
			},
		},
		PrimaryType: "Order",
		Domain: apitypes.TypedDataDomain{
			Name:              DOMAIN_NAME,
			Version:           VERSION,
			ChainId:           &cid,
			VerifyingContract: o.EscrowFactory.Hex(),
		},
		Message: msg,
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return common.Hash{}, err
	}

	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return common.Hash{}, err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(messageHash)))
	return crypto.Keccak256Hash(rawData), nil
}

// Salt returns the wire salt: the maker's salt with the extension hash
// mixed into the low bits, committing the signature to the escrow
// parameters.
func (o *Order) Salt() (*big.Int, error) {
	extension, err := o.Extension()
	if err != nil {
		return nil, err
	}

	return o.salt(extension), nil
}

// salt mixes the extension hash into the low bits of the maker's salt the
// way the limit order protocol expects, committing the signature to the
// escrow parameters.
func (o *Order) salt(extension []byte) *big.Int {
	extensionHash := new(big.Int).SetBytes(crypto.Keccak256(extension))
	extensionHash.And(extensionHash, saltExtensionMask)

	salt := new(big.Int).Lsh(o.Terms.Salt, 160)
	return salt.Or(salt, extensionHash)
}

var saltExtensionMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 160), big.NewInt(1))
