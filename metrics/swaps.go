package metrics

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	SWAP_TTL = time.Minute * 30
)

type SwapMetrics struct {
	startedCounter   metric.Int64Counter
	settledCounter   metric.Int64Counter
	cancelledCounter metric.Int64Counter

	activeSwapsGauge metric.Int64ObservableGauge
	activeSwapCount  *int64

	settleTimeHistogram metric.Float64Histogram
	swapStartTimeCache  *ttlcache.Cache[string, time.Time]

	gasUsedCounter    metric.Int64Counter
	gasPriceHistogram metric.Float64Histogram

	opts metric.MeasurementOption
}

// NewSwapMetrics initializes metrics tracking the swap lifecycle
func NewSwapMetrics(ctx context.Context, meter metric.Meter, env, id, version string) (*SwapMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("instance", id),
		attribute.String("version", version),
	)

	startedCounter, err := meter.Int64Counter(
		"resolver.SwapsStarted",
		metric.WithDescription("Number of swaps with a deployed source escrow"),
	)
	if err != nil {
		return nil, err
	}
	settledCounter, err := meter.Int64Counter(
		"resolver.SwapsSettled",
		metric.WithDescription("Number of swaps settled by secret reveal on both chains"),
	)
	if err != nil {
		return nil, err
	}
	cancelledCounter, err := meter.Int64Counter(
		"resolver.SwapsCancelled",
		metric.WithDescription("Number of swaps aborted through cancellation"),
	)
	if err != nil {
		return nil, err
	}

	activeSwapCount := new(int64)
	activeSwapsGauge, err := meter.Int64ObservableGauge(
		"resolver.ActiveSwaps",
		metric.WithInt64Callback(func(context context.Context, result metric.Int64Observer) error {
			result.Observe(*activeSwapCount, opts)
			return nil
		}),
		metric.WithDescription("Number of swaps with funds currently locked in escrow"),
	)
	if err != nil {
		return nil, err
	}

	settleTimeHistogram, err := meter.Float64Histogram("resolver.SwapSettleTime")
	if err != nil {
		return nil, err
	}

	gasUsedCounter, err := meter.Int64Counter(
		"resolver.GasUsed",
		metric.WithDescription("Total gas spent on resolver transactions per chain"),
	)
	if err != nil {
		return nil, err
	}
	gasPriceHistogram, err := meter.Float64Histogram(
		"resolver.GasPriceGwei",
		metric.WithDescription("Effective gas price of resolver transactions in gwei"),
	)
	if err != nil {
		return nil, err
	}

	return &SwapMetrics{
		startedCounter:      startedCounter,
		settledCounter:      settledCounter,
		cancelledCounter:    cancelledCounter,
		activeSwapsGauge:    activeSwapsGauge,
		activeSwapCount:     activeSwapCount,
		settleTimeHistogram: settleTimeHistogram,
		swapStartTimeCache: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](SWAP_TTL),
		),
		gasUsedCounter:    gasUsedCounter,
		gasPriceHistogram: gasPriceHistogram,
		opts:              opts,
	}, nil
}

// TrackGasUsage records gas spent by a mined transaction. Satisfies the
// monitored transactor's gas tracker, which reports every receipt it
// observes.
func (m *SwapMetrics) TrackGasUsage(chainID uint64, gasUsed uint64, gasPrice *big.Int) {
	chainOpts := metric.WithAttributes(attribute.Int64("chainID", int64(chainID))) // nolint:gosec

	m.gasUsedCounter.Add(context.Background(), int64(gasUsed), m.opts, chainOpts) // nolint:gosec

	gwei, _ := new(big.Float).Quo(new(big.Float).SetInt(gasPrice), big.NewFloat(1e9)).Float64()
	m.gasPriceHistogram.Record(context.Background(), gwei, m.opts, chainOpts)
}

func (m *SwapMetrics) TrackSwapStarted(orderHash common.Hash) {
	m.startedCounter.Add(context.Background(), 1, m.opts)
	*m.activeSwapCount++
	m.swapStartTimeCache.Set(orderHash.Hex(), time.Now(), ttlcache.DefaultTTL)
}

func (m *SwapMetrics) TrackSwapSettled(orderHash common.Hash) {
	m.settledCounter.Add(context.Background(), 1, m.opts)
	*m.activeSwapCount--

	startTime := m.swapStartTimeCache.Get(orderHash.Hex())
	if startTime == nil {
		log.Warn().Msgf("Swap start time for order %s not found", orderHash)
		return
	}

	m.settleTimeHistogram.Record(context.Background(), time.Since(startTime.Value()).Seconds(), m.opts)
}

func (m *SwapMetrics) TrackSwapCancelled(orderHash common.Hash) {
	m.cancelledCounter.Add(context.Background(), 1, m.opts)
	*m.activeSwapCount--
	m.swapStartTimeCache.Delete(orderHash.Hex())
}
