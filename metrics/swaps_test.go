package metrics_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/hyphalabs/crosschain-resolver/metrics"
)

type SwapMetricsTestSuite struct {
	suite.Suite

	metrics *metrics.SwapMetrics
}

func TestRunSwapMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(SwapMetricsTestSuite))
}

func (s *SwapMetricsTestSuite) SetupTest() {
	m, err := metrics.NewSwapMetrics(
		context.Background(), noop.NewMeterProvider().Meter("test"), "test", "resolver-1", "1.0.0")
	s.Nil(err)
	s.metrics = m
}

func (s *SwapMetricsTestSuite) Test_SwapLifecycle() {
	orderHash := crypto.Keccak256Hash([]byte("order"))

	s.metrics.TrackSwapStarted(orderHash)
	s.metrics.TrackSwapSettled(orderHash)

	// settling an unknown order only skips the settle time sample
	s.metrics.TrackSwapSettled(crypto.Keccak256Hash([]byte("unknown")))

	s.metrics.TrackSwapStarted(orderHash)
	s.metrics.TrackSwapCancelled(orderHash)
}

func (s *SwapMetricsTestSuite) Test_TrackGasUsage() {
	s.metrics.TrackGasUsage(1, 21_000, big.NewInt(30_000_000_000))
	s.metrics.TrackGasUsage(10, 150_000, big.NewInt(0))
}
