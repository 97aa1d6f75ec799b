package privacy

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyphalabs/crosschain-resolver/protocol/order"
	"github.com/hyphalabs/crosschain-resolver/resolver"
)

var (
	ErrRevealDelayOutOfRange = errors.New("reveal delay outside the allowed range")

	// timing errors: wait and retry, the commitment or order is fine
	ErrTooEarlyToReveal  = errors.New("commitment reveal delay has not elapsed")
	ErrExecutionTooEarly = errors.New("order execution delay has not elapsed")
)

type SwapDeployer interface {
	DeploySrc(ctx context.Context, o *order.Order, sig []byte, fillAmount *big.Int, partial *resolver.PartialFill) (resolver.Swap, error)
}

// DelayBounds constrain the commit-reveal timing knobs. Reveal delays
// outside the range are rejected, execution delays are clamped into it.
type DelayBounds struct {
	MinReveal  time.Duration
	MaxReveal  time.Duration
	MinExecute time.Duration
	MaxExecute time.Duration

	// CommitmentTTL bounds how long an unrevealed commitment or an
	// unexecuted delayed order stays alive before the store drops it.
	CommitmentTTL time.Duration
}

var DefaultDelayBounds = DelayBounds{
	MinReveal:     time.Minute,
	MaxReveal:     time.Hour,
	MinExecute:    time.Second * 30,
	MaxExecute:    time.Hour * 2,
	CommitmentTTL: time.Hour * 24,
}

// PrivacyResolver layers a commit-reveal flow over the swap deployer. An
// order is first published as an opaque hash, revealed after a delay, and
// executed after a further randomized delay, so observers cannot link the
// commitment to the fill until the fill is already scheduled.
type PrivacyResolver struct {
	deployer   SwapDeployer
	committer  common.Address
	srcChainID *big.Int
	bounds     DelayBounds

	commitments *CommitmentStore
	delayed     *DelayedOrderStore
	fakeVolumes *FakeVolumeStore

	log zerolog.Logger
}

func NewPrivacyResolver(
	deployer SwapDeployer,
	committer common.Address,
	srcChainID *big.Int,
	bounds DelayBounds,
) *PrivacyResolver {
	return &PrivacyResolver{
		deployer:    deployer,
		committer:   committer,
		srcChainID:  srcChainID,
		bounds:      bounds,
		commitments: NewCommitmentStore(bounds.CommitmentTTL),
		delayed:     NewDelayedOrderStore(bounds.CommitmentTTL),
		fakeVolumes: NewFakeVolumeStore(bounds.CommitmentTTL),
		log:         log.With().Str("committer", committer.Hex()).Logger(),
	}
}

// CommitHash binds the payload, the nonce and the committer identity into
// the published commitment.
func CommitHash(orderData []byte, nonce common.Hash, committer common.Address) common.Hash {
	return crypto.Keccak256Hash(orderData, nonce.Bytes(), committer.Bytes())
}

// CommitOrder publishes an opaque commitment. Nothing about the order
// leaks until the reveal.
func (p *PrivacyResolver) CommitOrder(commitHash common.Hash, revealDelay time.Duration) (*OrderCommitment, error) {
	if revealDelay < p.bounds.MinReveal || revealDelay > p.bounds.MaxReveal {
		return nil, ErrRevealDelayOutOfRange
	}

	now := time.Now()
	c := &OrderCommitment{
		CommitHash:  commitHash,
		Committer:   p.committer,
		RevealAfter: now.Add(revealDelay),
		ExpireAfter: now.Add(p.bounds.CommitmentTTL),
	}
	if err := p.commitments.Insert(c); err != nil {
		return nil, err
	}

	p.log.Info().
		Str("commitHash", commitHash.Hex()).
		Time("revealAfter", c.RevealAfter).
		Msgf("Committed order")
	return c, nil
}

// RevealAndScheduleOrder opens a commitment. The recomputed hash has to
// match a stored, unrevealed commitment whose reveal delay has elapsed; any
// mismatch fails with no state change. The decoded order is scheduled for
// execution after a clamped further delay.
func (p *PrivacyResolver) RevealAndScheduleOrder(
	orderData []byte,
	nonce common.Hash,
	executionDelay time.Duration,
) (*DelayedOrder, error) {
	commitHash := CommitHash(orderData, nonce, p.committer)
	c, err := p.commitments.Get(commitHash)
	if err != nil {
		return nil, err
	}
	if c.Revealed {
		return nil, ErrInvalidCommitment
	}
	if time.Now().Before(c.RevealAfter) {
		return nil, ErrTooEarlyToReveal
	}

	o, sig, fillAmount, err := DecodeOrderPayload(orderData)
	if err != nil {
		return nil, err
	}
	orderHash, err := o.Hash(p.srcChainID)
	if err != nil {
		return nil, err
	}

	d := &DelayedOrder{
		OrderHash:    orderHash,
		Order:        o,
		Signature:    sig,
		FillAmount:   fillAmount,
		ExecuteAfter: time.Now().Add(p.clampExecutionDelay(executionDelay)),
	}
	if err := p.delayed.Schedule(d); err != nil {
		return nil, err
	}
	if err := p.commitments.MarkRevealed(commitHash); err != nil {
		p.delayed.Remove(orderHash)
		return nil, err
	}

	p.log.Info().
		Str("commitHash", commitHash.Hex()).
		Str("orderHash", orderHash.Hex()).
		Time("executeAfter", d.ExecuteAfter).
		Msgf("Revealed and scheduled order")
	return d, nil
}

// ExecuteDelayedOrder fills the revealed order once its execution delay has
// elapsed, emitting decoy volume alongside the real fill. The delayed entry
// is single-use and removed on success.
func (p *PrivacyResolver) ExecuteDelayedOrder(ctx context.Context, orderHash common.Hash) (resolver.Swap, error) {
	d, err := p.delayed.Get(orderHash)
	if err != nil {
		return resolver.Swap{}, err
	}
	if time.Now().Before(d.ExecuteAfter) {
		return resolver.Swap{}, ErrExecutionTooEarly
	}

	p.CreateFakeVolume(d.Order.Terms.MakerAsset, d.FillAmount)

	swap, err := p.deployer.DeploySrc(ctx, d.Order, d.Signature, d.FillAmount, nil)
	if err != nil {
		return resolver.Swap{}, err
	}

	p.delayed.Remove(orderHash)
	p.log.Info().
		Str("orderHash", orderHash.Hex()).
		Msgf("Executed delayed order")
	return swap, nil
}

// FakeVolumes exposes the live decoy records.
func (p *PrivacyResolver) FakeVolumes() []*FakeVolume {
	return p.fakeVolumes.All()
}

func (p *PrivacyResolver) Commitment(commitHash common.Hash) (*OrderCommitment, error) {
	return p.commitments.Get(commitHash)
}

func (p *PrivacyResolver) Stop() {
	p.commitments.Stop()
	p.delayed.Stop()
	p.fakeVolumes.Stop()
}

func (p *PrivacyResolver) clampExecutionDelay(d time.Duration) time.Duration {
	if d < p.bounds.MinExecute {
		return p.bounds.MinExecute
	}
	if d > p.bounds.MaxExecute {
		return p.bounds.MaxExecute
	}

	return d
}
