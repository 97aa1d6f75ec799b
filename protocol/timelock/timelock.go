package timelock

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrSrcNotMonotonic = errors.New("timelock: source offsets must be non-decreasing")
	ErrDstNotMonotonic = errors.New("timelock: destination offsets must be non-decreasing")

	// ErrCancellationOrder guards the no-stuck-funds property: the source
	// escrow must not become cancellable before the destination one,
	// otherwise the maker can reclaim on the source while the resolver is
	// still locked on the destination.
	ErrCancellationOrder = errors.New("timelock: source cancellation opens before destination cancellation")
)

// Timelocks holds the seven stage offsets of one swap, in seconds relative
// to the escrow deployment timestamp, plus the deployment timestamp itself
// once known. Values are immutable; derivations return copies.
type Timelocks struct {
	SrcWithdrawal         uint32
	SrcPublicWithdrawal   uint32
	SrcCancellation       uint32
	SrcPublicCancellation uint32
	DstWithdrawal         uint32
	DstPublicWithdrawal   uint32
	DstCancellation       uint32

	DeployedAt uint32
}

// Validate enforces the orderings the escrow contracts themselves do not:
// offsets non-decreasing per side and the source cancellation window opening
// no earlier than the destination one.
func (t Timelocks) Validate() error {
	if t.SrcWithdrawal > t.SrcPublicWithdrawal ||
		t.SrcPublicWithdrawal > t.SrcCancellation ||
		t.SrcCancellation > t.SrcPublicCancellation {
		return ErrSrcNotMonotonic
	}
	if t.DstWithdrawal > t.DstPublicWithdrawal ||
		t.DstPublicWithdrawal > t.DstCancellation {
		return ErrDstNotMonotonic
	}
	if t.SrcCancellation < t.DstCancellation {
		return ErrCancellationOrder
	}

	return nil
}

// WithDeployedAt anchors the offsets to the block timestamp the escrow was
// deployed at.
func (t Timelocks) WithDeployedAt(ts uint64) Timelocks {
	// nolint:gosec
	t.DeployedAt = uint32(ts)
	return t
}

// Pack encodes the record into the uint256 wire form consumed by the escrow
// contracts: eight 32-bit lanes, deployment timestamp in the top lane.
func (t Timelocks) Pack() *big.Int {
	packed := new(big.Int)
	for i, offset := range t.lanes() {
		lane := new(big.Int).Lsh(new(big.Int).SetUint64(uint64(offset)), uint(i*32))
		packed.Or(packed, lane)
	}
	packed.Or(packed, new(big.Int).Lsh(new(big.Int).SetUint64(uint64(t.DeployedAt)), 224))

	return packed
}

// Unpack decodes the uint256 wire form. It fails on values that do not fit
// 256 bits.
func Unpack(packed *big.Int) (Timelocks, error) {
	if packed.Sign() < 0 || packed.BitLen() > 256 {
		return Timelocks{}, fmt.Errorf("timelock: packed value out of range")
	}

	mask := new(big.Int).SetUint64(0xffffffff)
	lane := func(i int) uint32 {
		v := new(big.Int).Rsh(packed, uint(i*32))
		return uint32(v.And(v, mask).Uint64())
	}

	return Timelocks{
		SrcWithdrawal:         lane(0),
		SrcPublicWithdrawal:   lane(1),
		SrcCancellation:       lane(2),
		SrcPublicCancellation: lane(3),
		DstWithdrawal:         lane(4),
		DstPublicWithdrawal:   lane(5),
		DstCancellation:       lane(6),
		DeployedAt:            lane(7),
	}, nil
}

// Source side windows. Private windows close when the next stage opens,
// public windows stay open once reached.

func (t Timelocks) SrcCanWithdraw(now uint64) bool {
	return t.within(now, t.SrcWithdrawal, &t.SrcPublicWithdrawal)
}

func (t Timelocks) SrcCanPublicWithdraw(now uint64) bool {
	return t.within(now, t.SrcPublicWithdrawal, nil)
}

func (t Timelocks) SrcCanCancel(now uint64) bool {
	return t.within(now, t.SrcCancellation, &t.SrcPublicCancellation)
}

func (t Timelocks) SrcCanPublicCancel(now uint64) bool {
	return t.within(now, t.SrcPublicCancellation, nil)
}

// Destination side windows. There is no public cancellation stage on the
// destination chain, so the private cancellation window never closes.

func (t Timelocks) DstCanWithdraw(now uint64) bool {
	return t.within(now, t.DstWithdrawal, &t.DstPublicWithdrawal)
}

func (t Timelocks) DstCanPublicWithdraw(now uint64) bool {
	return t.within(now, t.DstPublicWithdrawal, nil)
}

func (t Timelocks) DstCanCancel(now uint64) bool {
	return t.within(now, t.DstCancellation, nil)
}

func (t Timelocks) within(now uint64, start uint32, end *uint32) bool {
	deployedAt := uint64(t.DeployedAt)
	if now < deployedAt+uint64(start) {
		return false
	}
	if end != nil && now >= deployedAt+uint64(*end) {
		return false
	}

	return true
}

func (t Timelocks) lanes() [7]uint32 {
	return [7]uint32{
		t.SrcWithdrawal,
		t.SrcPublicWithdrawal,
		t.SrcCancellation,
		t.SrcPublicCancellation,
		t.DstWithdrawal,
		t.DstPublicWithdrawal,
		t.DstCancellation,
	}
}
