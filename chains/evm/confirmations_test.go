// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hyphalabs/crosschain-resolver/chains/evm"
	mock_evm "github.com/hyphalabs/crosschain-resolver/chains/evm/mock"
	"github.com/hyphalabs/crosschain-resolver/config"
)

type WatcherTestSuite struct {
	suite.Suite

	watcher *evm.Watcher

	mockClient *mock_evm.MockConfirmationClient
	mockPricer *mock_evm.MockTokenPricer

	usdcToken common.Address
}

func TestRunWatcherTestSuite(t *testing.T) {
	suite.Run(t, new(WatcherTestSuite))
}

func (s *WatcherTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockClient = mock_evm.NewMockConfirmationClient(ctrl)
	s.mockPricer = mock_evm.NewMockTokenPricer(ctrl)

	s.usdcToken = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	tokens := make(map[uint64]map[string]config.TokenConfig)
	tokens[1] = make(map[string]config.TokenConfig)
	tokens[1]["USDC"] = config.TokenConfig{
		Decimals: 6,
		Address:  s.usdcToken,
	}

	s.watcher = evm.NewWatcher(
		map[uint64]evm.ConfirmationClient{1: s.mockClient},
		s.mockPricer,
		config.TokenStore{Tokens: tokens},
		map[uint64]map[uint64]uint64{1: {500: 2}},
		time.Millisecond,
	)
}

func (s *WatcherTestSuite) Test_WaitForTokenConfirmations_UnknownChain() {
	err := s.watcher.WaitForTokenConfirmations(context.Background(), 42, common.Hash{}, s.usdcToken, big.NewInt(1000))

	s.NotNil(err)
}

func (s *WatcherTestSuite) Test_WaitForTokenConfirmations_InvalidToken() {
	err := s.watcher.WaitForTokenConfirmations(context.Background(), 1, common.Hash{}, common.Address{}, big.NewInt(1000))

	s.NotNil(err)
}

func (s *WatcherTestSuite) Test_WaitForTokenConfirmations_FillValueExceedsBuckets() {
	s.mockPricer.EXPECT().TokenPrice("USDC").Return(float64(0.99), nil)

	err := s.watcher.WaitForTokenConfirmations(context.Background(), 1, common.Hash{}, s.usdcToken, big.NewInt(1000000000))

	s.NotNil(err)
}

func (s *WatcherTestSuite) Test_WaitForTokenConfirmations_Timeout() {
	s.mockPricer.EXPECT().TokenPrice("USDC").Return(float64(0.99), nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()

	err := s.watcher.WaitForTokenConfirmations(ctx, 1, common.Hash{}, s.usdcToken, big.NewInt(499000000))

	s.NotNil(err)
}

func (s *WatcherTestSuite) Test_WaitForTokenConfirmations_ValidTransaction() {
	s.mockPricer.EXPECT().TokenPrice("USDC").Return(float64(0.99), nil)
	s.mockClient.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("error"))
	s.mockClient.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.mockClient.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{
		BlockNumber: big.NewInt(100),
	}, nil).AnyTimes()
	s.mockClient.EXPECT().LatestBlock().Return(nil, fmt.Errorf("error"))
	s.mockClient.EXPECT().LatestBlock().Return(big.NewInt(100), nil)
	s.mockClient.EXPECT().LatestBlock().Return(big.NewInt(102), nil)

	err := s.watcher.WaitForTokenConfirmations(context.Background(), 1, common.Hash{}, s.usdcToken, big.NewInt(499000000))

	s.Nil(err)
}
