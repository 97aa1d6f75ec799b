package privacy

import (
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"

	"github.com/hyphalabs/crosschain-resolver/protocol/order"
)

var (
	ErrCommitmentExists   = errors.New("commitment already exists")
	ErrCommitmentNotFound = errors.New("commitment not found")
	ErrInvalidCommitment  = errors.New("commitment already revealed")

	ErrOrderScheduled    = errors.New("order already scheduled")
	ErrOrderNotScheduled = errors.New("no delayed order scheduled under this hash")
)

// OrderCommitment is the opaque first phase of a commit-reveal order. Until
// revealed it exposes nothing but the hash and the committer.
type OrderCommitment struct {
	CommitHash  common.Hash
	Committer   common.Address
	RevealAfter time.Time
	ExpireAfter time.Time
	Revealed    bool
}

// DelayedOrder is a revealed order waiting out its randomized execution
// delay. Created only by a successful reveal, destroyed only by execution.
type DelayedOrder struct {
	OrderHash    common.Hash
	Order        *order.Order
	Signature    []byte
	FillAmount   *big.Int
	ExecuteAfter time.Time
}

// CommitmentStore holds pending commitments. Entries expire on their own
// after the commitment TTL; the lifecycle rules (single insert, single
// reveal) are enforced here rather than by callers.
type CommitmentStore struct {
	mu    sync.Mutex
	cache *ttlcache.Cache[common.Hash, *OrderCommitment]
}

func NewCommitmentStore(ttl time.Duration) *CommitmentStore {
	cache := ttlcache.New(
		ttlcache.WithTTL[common.Hash, *OrderCommitment](ttl),
	)
	go cache.Start()

	return &CommitmentStore{
		cache: cache,
	}
}

// Insert stores a new commitment. It fails if a live, unexpired commitment
// already occupies the hash; an expired entry is replaced.
func (s *CommitmentStore) Insert(c *OrderCommitment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache.Has(c.CommitHash) {
		return ErrCommitmentExists
	}

	s.cache.Set(c.CommitHash, c, ttlcache.DefaultTTL)
	return nil
}

func (s *CommitmentStore) Get(commitHash common.Hash) (*OrderCommitment, error) {
	item := s.cache.Get(commitHash)
	if item == nil {
		return nil, ErrCommitmentNotFound
	}

	return item.Value(), nil
}

// MarkRevealed flips the commitment to revealed exactly once.
func (s *CommitmentStore) MarkRevealed(commitHash common.Hash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.cache.Get(commitHash)
	if item == nil {
		return ErrCommitmentNotFound
	}
	if item.Value().Revealed {
		return ErrInvalidCommitment
	}

	item.Value().Revealed = true
	return nil
}

func (s *CommitmentStore) Stop() {
	s.cache.Stop()
}

// DelayedOrderStore holds revealed orders until their execution delay
// passes.
type DelayedOrderStore struct {
	mu    sync.Mutex
	cache *ttlcache.Cache[common.Hash, *DelayedOrder]
}

func NewDelayedOrderStore(ttl time.Duration) *DelayedOrderStore {
	cache := ttlcache.New(
		ttlcache.WithTTL[common.Hash, *DelayedOrder](ttl),
	)
	go cache.Start()

	return &DelayedOrderStore{
		cache: cache,
	}
}

func (s *DelayedOrderStore) Schedule(o *DelayedOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache.Has(o.OrderHash) {
		return ErrOrderScheduled
	}

	s.cache.Set(o.OrderHash, o, ttlcache.DefaultTTL)
	return nil
}

func (s *DelayedOrderStore) Get(orderHash common.Hash) (*DelayedOrder, error) {
	item := s.cache.Get(orderHash)
	if item == nil {
		return nil, ErrOrderNotScheduled
	}

	return item.Value(), nil
}

func (s *DelayedOrderStore) Remove(orderHash common.Hash) {
	s.cache.Delete(orderHash)
}

func (s *DelayedOrderStore) Stop() {
	s.cache.Stop()
}

// FakeVolumeStore keeps the decoy records around for the observability
// surface. Entries age out on their own; nothing reads them on the real
// execution path.
type FakeVolumeStore struct {
	cache *ttlcache.Cache[common.Hash, *FakeVolume]
}

func NewFakeVolumeStore(ttl time.Duration) *FakeVolumeStore {
	cache := ttlcache.New(
		ttlcache.WithTTL[common.Hash, *FakeVolume](ttl),
	)
	go cache.Start()

	return &FakeVolumeStore{
		cache: cache,
	}
}

func (s *FakeVolumeStore) Add(v *FakeVolume) {
	s.cache.Set(v.ID, v, ttlcache.DefaultTTL)
}

func (s *FakeVolumeStore) All() []*FakeVolume {
	volumes := make([]*FakeVolume, 0, s.cache.Len())
	for _, item := range s.cache.Items() {
		volumes = append(volumes, item.Value())
	}

	return volumes
}

func (s *FakeVolumeStore) Stop() {
	s.cache.Stop()
}
