package resolver

import (
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hyphalabs/crosschain-resolver/protocol/immutables"
)

type Side string

const (
	SideSrc Side = "source"
	SideDst Side = "destination"
)

type State string

const (
	StateCreated     State = "created"
	StateSrcDeployed State = "src_deployed"
	StateDstDeployed State = "dst_deployed"
	StateWithdrawn   State = "withdrawn"
	StateCancelled   State = "cancelled"
)

type Resolution string

const (
	ResolutionPending   Resolution = "pending"
	ResolutionWithdrawn Resolution = "withdrawn"
	ResolutionCancelled Resolution = "cancelled"
)

// Swap tracks one swap attempt across both chains. Each escrow is resolved
// at most once; the per-side resolution flag is what makes repeat
// withdraw/cancel calls fail instead of double-submitting.
type Swap struct {
	OrderHash  common.Hash
	FillAmount *big.Int

	// MultiFill records the order's fill policy at fill time. The lock's
	// top bit cannot be trusted for this, since a raw secret hash may
	// collide with the merkle marker.
	MultiFill bool

	SrcImmutables immutables.Immutables
	DstImmutables immutables.Immutables
	Complement    immutables.DstComplement

	SrcEscrow common.Address
	DstEscrow common.Address

	SrcDeployTx common.Hash
	DstDeployTx common.Hash

	SrcResolution Resolution
	DstResolution Resolution

	CreatedAt time.Time
}

func (s *Swap) State() State {
	switch {
	case s.SrcResolution == ResolutionWithdrawn && s.DstResolution == ResolutionWithdrawn:
		return StateWithdrawn
	case s.SrcResolution == ResolutionCancelled && s.DstResolution == ResolutionCancelled:
		return StateCancelled
	case s.DstEscrow != (common.Address{}):
		return StateDstDeployed
	case s.SrcEscrow != (common.Address{}):
		return StateSrcDeployed
	default:
		return StateCreated
	}
}

func (s *Swap) resolution(side Side) *Resolution {
	if side == SideSrc {
		return &s.SrcResolution
	}

	return &s.DstResolution
}

func (s *Swap) escrow(side Side) common.Address {
	if side == SideSrc {
		return s.SrcEscrow
	}

	return s.DstEscrow
}

func (s *Swap) immutables(side Side) immutables.Immutables {
	if side == SideSrc {
		return s.SrcImmutables
	}

	return s.DstImmutables
}

// SwapStore owns the swap records. First valid transition wins; every
// mutation goes through Update under the store lock.
type SwapStore struct {
	mu    sync.RWMutex
	swaps map[common.Hash]*Swap
}

func NewSwapStore() *SwapStore {
	return &SwapStore{
		swaps: make(map[common.Hash]*Swap),
	}
}

func (s *SwapStore) Insert(orderHash common.Hash, fillAmount *big.Int, multiFill bool) (*Swap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.swaps[orderHash]; ok {
		return nil, ErrSwapExists
	}

	swap := &Swap{
		OrderHash:     orderHash,
		FillAmount:    fillAmount,
		MultiFill:     multiFill,
		SrcResolution: ResolutionPending,
		DstResolution: ResolutionPending,
		CreatedAt:     time.Now(),
	}
	s.swaps[orderHash] = swap
	return swap, nil
}

// Delete drops a tracked swap. Used to release an order whose fill never
// produced an escrow, so a later fill attempt is not blocked by the dead
// record.
func (s *SwapStore) Delete(orderHash common.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.swaps, orderHash)
}

func (s *SwapStore) Get(orderHash common.Hash) (Swap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	swap, ok := s.swaps[orderHash]
	if !ok {
		return Swap{}, ErrSwapNotFound
	}

	return *swap, nil
}

// Update applies fn to the stored swap under the write lock. fn returning
// an error leaves the record untouched only if fn itself did not mutate, so
// transition checks must come before mutations inside fn.
func (s *SwapStore) Update(orderHash common.Hash, fn func(*Swap) error) (Swap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swap, ok := s.swaps[orderHash]
	if !ok {
		return Swap{}, ErrSwapNotFound
	}

	if err := fn(swap); err != nil {
		return Swap{}, err
	}

	return *swap, nil
}
