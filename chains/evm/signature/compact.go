package signature

import (
	"fmt"
)

// Compact converts a 65-byte (r ‖ s ‖ v) secp256k1 signature into the
// EIP-2098 compact form (r, vs) the order fill call consumes.
func Compact(sig []byte) ([32]byte, [32]byte, error) {
	var r, vs [32]byte
	if len(sig) != 65 {
		return r, vs, fmt.Errorf("signature must be 65 bytes, got %d", len(sig))
	}

	v := sig[64]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return r, vs, fmt.Errorf("invalid recovery id %d", sig[64])
	}

	copy(r[:], sig[:32])
	copy(vs[:], sig[32:64])
	vs[0] |= v << 7

	return r, vs, nil
}
