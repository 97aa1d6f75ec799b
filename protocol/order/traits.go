package order

import (
	"math/big"
)

// Maker traits bit layout, mirrored from the limit order protocol:
// bit 255 disallows partial fills, bit 254 allows multiple fills, the
// 40-bit nonce sits at bits 120..159.
const (
	noPartialFillsBit     = 255
	allowMultipleFillsBit = 254
	nonceShift            = 120
)

var nonceMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 40), big.NewInt(1))

// MakerTraits packs the maker's fill policy flags into the uint256 traits
// word that is part of the signed order.
func (o *Order) MakerTraits() *big.Int {
	traits := new(big.Int)
	if !o.Policy.AllowPartialFills {
		traits.SetBit(traits, noPartialFillsBit, 1)
	}
	if o.Policy.AllowMultipleFills {
		traits.SetBit(traits, allowMultipleFillsBit, 1)
	}
	if o.Policy.Nonce != nil {
		nonce := new(big.Int).And(o.Policy.Nonce, nonceMask)
		traits.Or(traits, nonce.Lsh(nonce, nonceShift))
	}

	return traits
}

// TakerTraits describe how the resolver fills the order: the worst-price
// threshold the fill must satisfy and the extension/interaction blobs
// appended to the fill calldata.
type TakerTraits struct {
	// Threshold is the minimum acceptable output for the given fill
	// amount. The fill reverts if the auction price is worse.
	Threshold *big.Int
	// MakingAmount denominates the fill amount in maker asset units.
	MakingAmount bool
	Extension    []byte
	Interaction  []byte
}

const (
	makingAmountBit        = 255
	extensionLengthShift   = 224
	interactionLengthShift = 200
)

// Encode packs the traits word and concatenates the argument blobs the way
// the fill call consumes them: extension first, interaction second, lengths
// in the traits word.
func (t TakerTraits) Encode() (*big.Int, []byte) {
	traits := new(big.Int)
	if t.MakingAmount {
		traits.SetBit(traits, makingAmountBit, 1)
	}
	if t.Threshold != nil {
		traits.Or(traits, t.Threshold)
	}

	traits.Or(traits, new(big.Int).Lsh(big.NewInt(int64(len(t.Extension))), extensionLengthShift))
	traits.Or(traits, new(big.Int).Lsh(big.NewInt(int64(len(t.Interaction))), interactionLengthShift))

	args := make([]byte, 0, len(t.Extension)+len(t.Interaction))
	args = append(args, t.Extension...)
	args = append(args, t.Interaction...)
	return traits, args
}
