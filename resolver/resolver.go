package resolver

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"

	"github.com/hyphalabs/crosschain-resolver/chains/evm/calls/events"
	"github.com/hyphalabs/crosschain-resolver/chains/evm/signature"
	"github.com/hyphalabs/crosschain-resolver/protocol/escrow"
	"github.com/hyphalabs/crosschain-resolver/protocol/hashlock"
	"github.com/hyphalabs/crosschain-resolver/protocol/immutables"
	"github.com/hyphalabs/crosschain-resolver/protocol/order"
)

const (
	submitAttempts = 3
	submitBackoff  = time.Second * 2
)

type ResolverCaller interface {
	DeploySrc(
		srcImm immutables.Immutables,
		o *order.Order,
		r [32]byte,
		vs [32]byte,
		fillAmount *big.Int,
		takerTraits *big.Int,
		args []byte,
		opts transactor.TransactOptions,
	) (*common.Hash, error)
	DeployDst(
		dstImm immutables.Immutables,
		srcCancellationTimestamp *big.Int,
		opts transactor.TransactOptions,
	) (*common.Hash, error)
}

type EscrowCaller interface {
	Withdraw(secret common.Hash, imm immutables.Immutables, opts transactor.TransactOptions) (*common.Hash, error)
	PublicWithdraw(secret common.Hash, imm immutables.Immutables, opts transactor.TransactOptions) (*common.Hash, error)
	Cancel(imm immutables.Immutables, opts transactor.TransactOptions) (*common.Hash, error)
	PublicCancel(imm immutables.Immutables, opts transactor.TransactOptions) (*common.Hash, error)
}

type EventListener interface {
	WaitForSrcEscrowCreated(ctx context.Context, factory common.Address, orderHash common.Hash, startBlock *big.Int) (*events.SrcEscrowCreated, error)
	WaitForDstEscrowCreated(ctx context.Context, factory common.Address, lock common.Hash, startBlock *big.Int) (*events.DstEscrowCreated, error)
}

type ChainClient interface {
	WaitAndReturnTxReceipt(h common.Hash) (*ethTypes.Receipt, error)
	LatestBlock() (*big.Int, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*ethTypes.Block, error)
}

// Chain bundles everything the coordinator needs on one side of the swap.
type Chain struct {
	ChainID        *big.Int
	Client         ChainClient
	Listener       EventListener
	Resolver       ResolverCaller
	NewEscrow      func(common.Address) EscrowCaller
	Factory        *escrow.Factory
	FactoryAddress common.Address
	SrcProxyHash   common.Hash
	DstProxyHash   common.Hash
}

// PartialFill is the proof material authorizing one fill of a multi-fill
// order.
type PartialFill struct {
	Proof      []common.Hash
	Index      uint64
	SecretHash common.Hash
}

// Resolver drives the swap protocol: source fill, destination deployment
// and the later withdraw/cancel calls on both chains. All suspension
// happens between transactions; every operation re-reads the chain clock
// before deciding whether a window is open.
type Resolver struct {
	src     Chain
	dst     Chain
	address common.Address
	swaps   *SwapStore

	log zerolog.Logger
}

// New creates a coordinator. address is the on-chain resolver contract,
// recorded as the taker of every escrow it deploys.
func New(src Chain, dst Chain, address common.Address, swaps *SwapStore) *Resolver {
	return &Resolver{
		src:     src,
		dst:     dst,
		address: address,
		swaps:   swaps,
		log:     log.With().Str("resolver", address.Hex()).Logger(),
	}
}

func (r *Resolver) Swap(orderHash common.Hash) (Swap, error) {
	return r.swaps.Get(orderHash)
}

// DeploySrc fills the order on the source chain and blocks until the
// escrow deployment event is observable at the configured confirmation
// depth. The returned swap carries the immutables the escrow was actually
// deployed with.
func (r *Resolver) DeploySrc(
	ctx context.Context,
	o *order.Order,
	sig []byte,
	fillAmount *big.Int,
	partial *PartialFill,
) (Swap, error) {
	orderHash, err := o.Hash(r.src.ChainID)
	if err != nil {
		return Swap{}, err
	}

	if err := r.validateFill(o, fillAmount, partial); err != nil {
		return Swap{}, err
	}

	if _, err := r.swaps.Insert(orderHash, fillAmount, o.Policy.AllowMultipleFills); err != nil {
		return Swap{}, err
	}

	// Until the fill transaction is confirmed no escrow exists, so a
	// failed attempt releases the record and the order stays fillable.
	deployed := false
	defer func() {
		if !deployed {
			r.swaps.Delete(orderHash)
		}
	}()

	rWord, vs, err := signature.Compact(sig)
	if err != nil {
		return Swap{}, err
	}

	extension, err := o.Extension()
	if err != nil {
		return Swap{}, err
	}

	var interaction []byte
	if partial != nil {
		interaction, err = escrow.MultipleFillInteraction(partial.Proof, partial.Index, partial.SecretHash)
		if err != nil {
			return Swap{}, err
		}
	}

	takerTraits, args := order.TakerTraits{
		Threshold:    o.TakingAmountFor(fillAmount),
		MakingAmount: true,
		Extension:    extension,
		Interaction:  interaction,
	}.Encode()

	srcImm := immutables.Immutables{
		OrderHash:     orderHash,
		Hashlock:      o.Escrow.Hashlock,
		Maker:         o.Terms.Maker,
		Taker:         r.address,
		Token:         o.Terms.MakerAsset,
		Amount:        fillAmount,
		SafetyDeposit: o.Escrow.SrcSafetyDeposit,
		Timelocks:     o.Escrow.Timelocks,
	}

	receipt, err := r.submit(ctx, r.src, func() (*common.Hash, error) {
		return r.src.Resolver.DeploySrc(
			srcImm,
			o,
			rWord,
			vs,
			fillAmount,
			takerTraits,
			args,
			transactor.TransactOptions{Value: o.Escrow.SrcSafetyDeposit},
		)
	})
	if err != nil {
		return Swap{}, fmt.Errorf("deploying src escrow: %w", err)
	}
	deployed = true

	event, err := r.src.Listener.WaitForSrcEscrowCreated(
		ctx, r.src.FactoryAddress, orderHash, new(big.Int).SetUint64(receipt.BlockNumber.Uint64()))
	if err != nil {
		return Swap{}, fmt.Errorf("reading src escrow deployment: %w", err)
	}

	deployedImm, err := event.Immutables()
	if err != nil {
		return Swap{}, err
	}

	escrowAddr, err := r.src.Factory.SrcAddress(deployedImm, r.src.SrcProxyHash)
	if err != nil {
		return Swap{}, err
	}

	swap, err := r.swaps.Update(orderHash, func(s *Swap) error {
		s.SrcImmutables = deployedImm
		s.Complement = event.Complement()
		s.SrcEscrow = escrowAddr
		s.SrcDeployTx = receipt.TxHash
		return nil
	})
	if err != nil {
		return Swap{}, err
	}

	r.log.Info().
		Str("orderHash", orderHash.Hex()).
		Str("escrow", escrowAddr.Hex()).
		Msgf("Deployed source escrow")
	return swap, nil
}

// DeployDst deploys the destination escrow from the immutables read out of
// the source deployment event. The resolver contract funds amount plus
// safety deposit.
func (r *Resolver) DeployDst(ctx context.Context, orderHash common.Hash) (Swap, error) {
	swap, err := r.swaps.Get(orderHash)
	if err != nil {
		return Swap{}, err
	}
	if swap.State() != StateSrcDeployed {
		return Swap{}, fmt.Errorf("deploying dst escrow in state %s: %w", swap.State(), ErrInvalidState)
	}

	pending := swap.SrcImmutables.
		WithComplement(swap.Complement).
		WithTaker(r.address).
		WithDeployedAt(0)

	srcCancellation := uint64(swap.SrcImmutables.Timelocks.DeployedAt) +
		uint64(swap.SrcImmutables.Timelocks.SrcCancellation)

	receipt, err := r.submit(ctx, r.dst, func() (*common.Hash, error) {
		return r.dst.Resolver.DeployDst(
			pending,
			new(big.Int).SetUint64(srcCancellation),
			transactor.TransactOptions{Value: pending.SafetyDeposit},
		)
	})
	if err != nil {
		return Swap{}, fmt.Errorf("deploying dst escrow: %w", err)
	}

	event, err := r.dst.Listener.WaitForDstEscrowCreated(
		ctx, r.dst.FactoryAddress, swap.SrcImmutables.Hashlock.Hash(), new(big.Int).SetUint64(receipt.BlockNumber.Uint64()))
	if err != nil {
		return Swap{}, fmt.Errorf("reading dst escrow deployment: %w", err)
	}

	derived, dstImm, err := r.dst.Factory.DstAddress(
		swap.SrcImmutables, swap.Complement, r.address, event.BlockTimestamp, r.dst.DstProxyHash)
	if err != nil {
		return Swap{}, err
	}
	if derived != event.Escrow {
		return Swap{}, fmt.Errorf("derived dst escrow %s does not match deployed %s", derived, event.Escrow)
	}

	swap, err = r.swaps.Update(orderHash, func(s *Swap) error {
		s.DstImmutables = dstImm
		s.DstEscrow = event.Escrow
		s.DstDeployTx = receipt.TxHash
		return nil
	})
	if err != nil {
		return Swap{}, err
	}

	r.log.Info().
		Str("orderHash", orderHash.Hex()).
		Str("escrow", event.Escrow.Hex()).
		Msgf("Deployed destination escrow")
	return swap, nil
}

// Withdraw submits the secret to one side's escrow. The hashlock and the
// timelock window are checked against the current chain time before any
// transaction leaves the resolver, so a wrong secret or a premature call
// fails locally instead of burning gas on a revert.
func (r *Resolver) Withdraw(
	ctx context.Context,
	side Side,
	orderHash common.Hash,
	secret common.Hash,
	partial *PartialFill,
) (Swap, error) {
	swap, err := r.swaps.Get(orderHash)
	if err != nil {
		return Swap{}, err
	}

	imm := swap.immutables(side)
	escrowAddr := swap.escrow(side)
	if escrowAddr == (common.Address{}) {
		return Swap{}, fmt.Errorf("%s escrow not deployed: %w", side, ErrInvalidState)
	}
	if *swap.resolution(side) != ResolutionPending {
		return Swap{}, fmt.Errorf("withdrawing on %s escrow: %w", side, ErrAlreadyResolved)
	}

	if err := r.validateSecret(swap.MultiFill, imm.Hashlock, secret, partial); err != nil {
		return Swap{}, err
	}

	now, err := r.chainNow(ctx, side)
	if err != nil {
		return Swap{}, err
	}

	caller := r.chain(side).NewEscrow(escrowAddr)
	var submitFn func() (*common.Hash, error)
	tl := imm.Timelocks
	switch {
	case side == SideSrc && tl.SrcCanWithdraw(now),
		side == SideDst && tl.DstCanWithdraw(now):
		submitFn = func() (*common.Hash, error) {
			return caller.Withdraw(secret, imm, transactor.TransactOptions{})
		}
	case side == SideSrc && tl.SrcCanPublicWithdraw(now),
		side == SideDst && tl.DstCanPublicWithdraw(now):
		submitFn = func() (*common.Hash, error) {
			return caller.PublicWithdraw(secret, imm, transactor.TransactOptions{})
		}
	default:
		opens := uint64(tl.DeployedAt) + uint64(tl.SrcWithdrawal)
		if side == SideDst {
			opens = uint64(tl.DeployedAt) + uint64(tl.DstWithdrawal)
		}
		return Swap{}, timingError("withdraw", side, now, opens)
	}

	if _, err := r.submit(ctx, r.chain(side), submitFn); err != nil {
		return Swap{}, fmt.Errorf("withdrawing on %s escrow: %w", side, err)
	}

	swap, err = r.swaps.Update(orderHash, func(s *Swap) error {
		res := s.resolution(side)
		if *res != ResolutionPending {
			return ErrAlreadyResolved
		}
		*res = ResolutionWithdrawn
		return nil
	})
	if err != nil {
		return Swap{}, err
	}

	r.log.Info().
		Str("orderHash", orderHash.Hex()).
		Str("side", string(side)).
		Msgf("Withdrew from escrow")
	return swap, nil
}

// Cancel aborts one side's escrow, returning funds to the original
// depositor.
func (r *Resolver) Cancel(ctx context.Context, side Side, orderHash common.Hash) (Swap, error) {
	swap, err := r.swaps.Get(orderHash)
	if err != nil {
		return Swap{}, err
	}

	imm := swap.immutables(side)
	escrowAddr := swap.escrow(side)
	if escrowAddr == (common.Address{}) {
		return Swap{}, fmt.Errorf("%s escrow not deployed: %w", side, ErrInvalidState)
	}
	if *swap.resolution(side) != ResolutionPending {
		return Swap{}, fmt.Errorf("cancelling on %s escrow: %w", side, ErrAlreadyResolved)
	}

	now, err := r.chainNow(ctx, side)
	if err != nil {
		return Swap{}, err
	}

	caller := r.chain(side).NewEscrow(escrowAddr)
	var submitFn func() (*common.Hash, error)
	tl := imm.Timelocks
	switch {
	case side == SideSrc && tl.SrcCanCancel(now),
		side == SideDst && tl.DstCanCancel(now):
		submitFn = func() (*common.Hash, error) {
			return caller.Cancel(imm, transactor.TransactOptions{})
		}
	case side == SideSrc && tl.SrcCanPublicCancel(now):
		submitFn = func() (*common.Hash, error) {
			return caller.PublicCancel(imm, transactor.TransactOptions{})
		}
	default:
		opens := uint64(tl.DeployedAt) + uint64(tl.SrcCancellation)
		if side == SideDst {
			opens = uint64(tl.DeployedAt) + uint64(tl.DstCancellation)
		}
		return Swap{}, timingError("cancel", side, now, opens)
	}

	if _, err := r.submit(ctx, r.chain(side), submitFn); err != nil {
		return Swap{}, fmt.Errorf("cancelling on %s escrow: %w", side, err)
	}

	swap, err = r.swaps.Update(orderHash, func(s *Swap) error {
		res := s.resolution(side)
		if *res != ResolutionPending {
			return ErrAlreadyResolved
		}
		*res = ResolutionCancelled
		return nil
	})
	if err != nil {
		return Swap{}, err
	}

	r.log.Info().
		Str("orderHash", orderHash.Hex()).
		Str("side", string(side)).
		Msgf("Cancelled escrow")
	return swap, nil
}

// Settle completes a swap by revealing the secret, destination first. The
// secret becomes public with the first reveal, but withdrawing for the
// maker on the destination before claiming on the source means a resolver
// crash between the two calls never leaves the maker unpaid.
func (r *Resolver) Settle(
	ctx context.Context,
	orderHash common.Hash,
	secret common.Hash,
	partial *PartialFill,
) (Swap, error) {
	if _, err := r.Withdraw(ctx, SideDst, orderHash, secret, partial); err != nil {
		return Swap{}, err
	}

	return r.Withdraw(ctx, SideSrc, orderHash, secret, partial)
}

// Abort cancels both escrows. The two chains are independent, so the calls
// run in parallel; each fails or succeeds on its own window.
func (r *Resolver) Abort(ctx context.Context, orderHash common.Hash) error {
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		_, err := r.Cancel(ctx, SideDst, orderHash)
		return err
	})
	p.Go(func(ctx context.Context) error {
		_, err := r.Cancel(ctx, SideSrc, orderHash)
		return err
	})

	return p.Wait()
}

func (r *Resolver) validateFill(o *order.Order, fillAmount *big.Int, partial *PartialFill) error {
	if fillAmount.Cmp(o.Terms.MakingAmount) > 0 {
		return fmt.Errorf("fill amount %s exceeds order capacity %s", fillAmount, o.Terms.MakingAmount)
	}
	if fillAmount.Cmp(o.Terms.MakingAmount) < 0 && !o.Policy.AllowPartialFills {
		return fmt.Errorf("order does not allow partial fills")
	}

	if !o.Policy.AllowMultipleFills {
		if partial != nil {
			return fmt.Errorf("single fill order does not take a merkle proof")
		}
		return nil
	}

	if partial == nil {
		return fmt.Errorf("multiple fill order requires a merkle proof")
	}
	if !hashlock.Verify(o.Escrow.Hashlock, partial.Proof, partial.Index, partial.SecretHash) {
		return ErrInvalidProof
	}

	return nil
}

// validateSecret checks a reveal before anything is submitted. The fill
// mode comes from the swap record, not the lock's top bit: a raw secret
// hash collides with the merkle marker for half of all secrets.
func (r *Resolver) validateSecret(multiFill bool, lock hashlock.Lock, secret common.Hash, partial *PartialFill) error {
	if !multiFill {
		if hashlock.HashSecret(secret) != lock.Hash() {
			return ErrInvalidSecret
		}
		return nil
	}

	if partial == nil {
		return fmt.Errorf("multiple fill escrow requires a merkle proof: %w", ErrInvalidProof)
	}
	if hashlock.HashSecret(secret) != partial.SecretHash {
		return ErrInvalidSecret
	}
	if !hashlock.Verify(lock, partial.Proof, partial.Index, partial.SecretHash) {
		return ErrInvalidProof
	}

	return nil
}

// submit sends a transaction with bounded retries and waits for its
// receipt. Success only counts once the receipt reports it; a revert is
// not retried since the protocol state that caused it will not change on
// its own.
func (r *Resolver) submit(ctx context.Context, chain Chain, fn func() (*common.Hash, error)) (*ethTypes.Receipt, error) {
	var lastErr error
	for attempt := 0; attempt < submitAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(submitBackoff << (attempt - 1)):
			}
		}

		hash, err := fn()
		if err != nil {
			lastErr = err
			r.log.Warn().Err(err).Msgf("Transaction submission failed, attempt %d", attempt+1)
			continue
		}

		receipt, err := chain.Client.WaitAndReturnTxReceipt(*hash)
		if err != nil {
			lastErr = err
			r.log.Warn().Err(err).Msgf("Waiting for receipt of %s failed, attempt %d", hash, attempt+1)
			continue
		}
		if receipt.Status != ethTypes.ReceiptStatusSuccessful {
			return nil, fmt.Errorf("transaction %s: %w", hash, ErrTxReverted)
		}

		return receipt, nil
	}

	return nil, fmt.Errorf("after %d attempts: %w", submitAttempts, lastErr)
}

func (r *Resolver) chain(side Side) Chain {
	if side == SideSrc {
		return r.src
	}

	return r.dst
}

// chainNow reads the side's current block timestamp. Windows are always
// evaluated against the chain's own clock, never the local one or a cached
// value.
func (r *Resolver) chainNow(ctx context.Context, side Side) (uint64, error) {
	chain := r.chain(side)
	head, err := chain.Client.LatestBlock()
	if err != nil {
		return 0, err
	}

	block, err := chain.Client.BlockByNumber(ctx, head)
	if err != nil {
		return 0, err
	}

	return block.Time(), nil
}
