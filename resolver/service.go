package resolver

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/hyphalabs/crosschain-resolver/protocol/order"
)

type SwapResolver interface {
	DeploySrc(ctx context.Context, o *order.Order, sig []byte, fillAmount *big.Int, partial *PartialFill) (Swap, error)
	DeployDst(ctx context.Context, orderHash common.Hash) (Swap, error)
	Withdraw(ctx context.Context, side Side, orderHash common.Hash, secret common.Hash, partial *PartialFill) (Swap, error)
	Cancel(ctx context.Context, side Side, orderHash common.Hash) (Swap, error)
	Swap(orderHash common.Hash) (Swap, error)
}

type ConfirmationWatcher interface {
	WaitForTokenConfirmations(ctx context.Context, chainID uint64, txHash common.Hash, token common.Address, amount *big.Int) error
}

// SecretSource hands out maker-revealed secrets by order and fill index.
type SecretSource interface {
	Secret(orderHash common.Hash, index uint64) (common.Hash, error)
}

type SwapMetrics interface {
	TrackSwapStarted(orderHash common.Hash)
	TrackSwapSettled(orderHash common.Hash)
	TrackSwapCancelled(orderHash common.Hash)
}

// SwapService sequences whole swap flows on top of the per-transition
// coordinator: fill with value-scaled confirmation waits between the two
// deployments, and settle/abort loops that wait out closed timelock
// windows instead of failing on them.
type SwapService struct {
	resolver SwapResolver
	watcher  ConfirmationWatcher
	secrets  SecretSource
	metrics  SwapMetrics

	retryInterval time.Duration

	log zerolog.Logger
}

func NewSwapService(
	resolver SwapResolver,
	watcher ConfirmationWatcher,
	secrets SecretSource,
	metrics SwapMetrics,
	retryInterval time.Duration,
) *SwapService {
	return &SwapService{
		resolver:      resolver,
		watcher:       watcher,
		secrets:       secrets,
		metrics:       metrics,
		retryInterval: retryInterval,
		log:           log.With().Str("component", "swapService").Logger(),
	}
}

func (s *SwapService) Swap(orderHash common.Hash) (Swap, error) {
	return s.resolver.Swap(orderHash)
}

// Fill deploys both escrows for the order. The destination escrow is only
// funded after the source deployment has enough confirmations for the
// fill's USD value, so a source chain reorg cannot leave the resolver with
// funds locked against an escrow that no longer exists.
func (s *SwapService) Fill(
	ctx context.Context,
	o *order.Order,
	sig []byte,
	fillAmount *big.Int,
	partial *PartialFill,
) error {
	swap, err := s.resolver.DeploySrc(ctx, o, sig, fillAmount, partial)
	if err != nil {
		return err
	}
	s.metrics.TrackSwapStarted(swap.OrderHash)

	err = s.watcher.WaitForTokenConfirmations(
		ctx, o.Escrow.SrcChainID.Uint64(), swap.SrcDeployTx, o.Terms.MakerAsset, fillAmount)
	if err != nil {
		return fmt.Errorf("confirming src escrow deployment: %w", err)
	}

	swap, err = s.resolver.DeployDst(ctx, swap.OrderHash)
	if err != nil {
		return err
	}

	err = s.watcher.WaitForTokenConfirmations(
		ctx, o.Escrow.DstChainID.Uint64(), swap.DstDeployTx, o.Escrow.DstToken, swap.DstImmutables.Amount)
	if err != nil {
		return fmt.Errorf("confirming dst escrow deployment: %w", err)
	}

	return nil
}

// Settle withdraws with the revealed secret on both escrows, destination
// first. The secret is read from the source by fill index, so a settlement
// retried after a crash picks up the cached reveal. Each side waits for its
// withdrawal window to open.
func (s *SwapService) Settle(
	ctx context.Context,
	orderHash common.Hash,
	partial *PartialFill,
) error {
	var index uint64
	if partial != nil {
		index = partial.Index
	}
	secret, err := s.secrets.Secret(orderHash, index)
	if err != nil {
		return fmt.Errorf("settling order %s: %w", orderHash, err)
	}

	err = s.untilWindowOpens(ctx, func() error {
		_, err := s.resolver.Withdraw(ctx, SideDst, orderHash, secret, partial)
		return err
	})
	if err != nil {
		return err
	}

	err = s.untilWindowOpens(ctx, func() error {
		_, err := s.resolver.Withdraw(ctx, SideSrc, orderHash, secret, partial)
		return err
	})
	if err != nil {
		return err
	}

	s.metrics.TrackSwapSettled(orderHash)
	return nil
}

// Abort cancels both escrows, each once its cancellation window opens. The
// sides are independent and run in parallel.
func (s *SwapService) Abort(ctx context.Context, orderHash common.Hash) error {
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		return s.untilWindowOpens(ctx, func() error {
			_, err := s.resolver.Cancel(ctx, SideDst, orderHash)
			return err
		})
	})
	p.Go(func(ctx context.Context) error {
		return s.untilWindowOpens(ctx, func() error {
			_, err := s.resolver.Cancel(ctx, SideSrc, orderHash)
			return err
		})
	})
	if err := p.Wait(); err != nil {
		return err
	}

	s.metrics.TrackSwapCancelled(orderHash)
	return nil
}

// untilWindowOpens retries fn for as long as it fails on a closed timelock
// window. Every other error is final.
func (s *SwapService) untilWindowOpens(ctx context.Context, fn func() error) error {
	for {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrTooEarly) {
			return err
		}

		s.log.Debug().Err(err).Msgf("Window not open yet, retrying in %s", s.retryInterval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.retryInterval):
		}
	}
}
