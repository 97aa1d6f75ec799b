package resolver_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hyphalabs/crosschain-resolver/protocol/hashlock"
	"github.com/hyphalabs/crosschain-resolver/protocol/immutables"
	"github.com/hyphalabs/crosschain-resolver/protocol/order"
	"github.com/hyphalabs/crosschain-resolver/resolver"
	mock_resolver "github.com/hyphalabs/crosschain-resolver/resolver/mock"
)

type SwapServiceTestSuite struct {
	suite.Suite

	mockResolver *mock_resolver.MockSwapResolver
	mockWatcher  *mock_resolver.MockConfirmationWatcher
	mockSecrets  *mock_resolver.MockSecretSource
	mockMetrics  *mock_resolver.MockSwapMetrics

	service *resolver.SwapService

	secret common.Hash
	sig    []byte
}

func TestRunSwapServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SwapServiceTestSuite))
}

func (s *SwapServiceTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockResolver = mock_resolver.NewMockSwapResolver(ctrl)
	s.mockWatcher = mock_resolver.NewMockConfirmationWatcher(ctrl)
	s.mockSecrets = mock_resolver.NewMockSecretSource(ctrl)
	s.mockMetrics = mock_resolver.NewMockSwapMetrics(ctrl)

	s.secret = crypto.Keccak256Hash([]byte("secret"))
	s.sig = make([]byte, 65)

	s.service = resolver.NewSwapService(s.mockResolver, s.mockWatcher, s.mockSecrets, s.mockMetrics, time.Millisecond)
}

func (s *SwapServiceTestSuite) order() *order.Order {
	lock, err := hashlock.ForSingleFill(s.secret)
	s.Nil(err)

	o, err := order.New(
		srcFactoryAddress,
		order.Terms{
			Maker:        makerAddress,
			Receiver:     makerAddress,
			MakerAsset:   srcToken,
			TakerAsset:   dstToken,
			MakingAmount: big.NewInt(1000),
			TakingAmount: big.NewInt(900),
			Salt:         big.NewInt(42),
		},
		order.EscrowExtension{
			Hashlock:         lock,
			Timelocks:        testTimelocks,
			SrcChainID:       big.NewInt(1),
			DstChainID:       big.NewInt(10),
			DstToken:         dstToken,
			SrcSafetyDeposit: big.NewInt(5),
			DstSafetyDeposit: big.NewInt(5),
		},
		order.AuctionDetails{},
		nil,
		order.FillPolicy{Nonce: big.NewInt(1)},
	)
	s.Nil(err)
	return o
}

func (s *SwapServiceTestSuite) Test_Fill_DeploysBothEscrowsWithConfirmations() {
	o := s.order()
	orderHash, err := o.Hash(big.NewInt(1))
	s.Nil(err)

	srcTx := crypto.Keccak256Hash([]byte("src tx"))
	dstTx := crypto.Keccak256Hash([]byte("dst tx"))
	fillAmount := big.NewInt(1000)

	srcDeploy := s.mockResolver.EXPECT().
		DeploySrc(gomock.Any(), o, s.sig, fillAmount, gomock.Nil()).
		Return(resolver.Swap{OrderHash: orderHash, SrcDeployTx: srcTx}, nil)
	started := s.mockMetrics.EXPECT().TrackSwapStarted(orderHash).After(srcDeploy)
	srcConfirmed := s.mockWatcher.EXPECT().
		WaitForTokenConfirmations(gomock.Any(), uint64(1), srcTx, srcToken, fillAmount).
		Return(nil).
		After(started)
	dstDeploy := s.mockResolver.EXPECT().
		DeployDst(gomock.Any(), orderHash).
		Return(resolver.Swap{
			OrderHash:     orderHash,
			DstDeployTx:   dstTx,
			DstImmutables: immutables.Immutables{Amount: big.NewInt(900)},
		}, nil).
		After(srcConfirmed)
	s.mockWatcher.EXPECT().
		WaitForTokenConfirmations(gomock.Any(), uint64(10), dstTx, dstToken, big.NewInt(900)).
		Return(nil).
		After(dstDeploy)

	err = s.service.Fill(context.Background(), o, s.sig, fillAmount, nil)

	s.Nil(err)
}

func (s *SwapServiceTestSuite) Test_Fill_StopsWhenSrcDeploymentFails() {
	o := s.order()

	s.mockResolver.EXPECT().
		DeploySrc(gomock.Any(), o, s.sig, big.NewInt(1000), gomock.Nil()).
		Return(resolver.Swap{}, fmt.Errorf("deployment failed"))

	err := s.service.Fill(context.Background(), o, s.sig, big.NewInt(1000), nil)

	s.NotNil(err)
}

func (s *SwapServiceTestSuite) Test_Fill_StopsWhenConfirmationsTimeOut() {
	o := s.order()
	orderHash, err := o.Hash(big.NewInt(1))
	s.Nil(err)

	s.mockResolver.EXPECT().
		DeploySrc(gomock.Any(), o, s.sig, big.NewInt(1000), gomock.Nil()).
		Return(resolver.Swap{OrderHash: orderHash}, nil)
	s.mockMetrics.EXPECT().TrackSwapStarted(orderHash)
	s.mockWatcher.EXPECT().
		WaitForTokenConfirmations(gomock.Any(), uint64(1), gomock.Any(), srcToken, big.NewInt(1000)).
		Return(fmt.Errorf("timed out"))

	err = s.service.Fill(context.Background(), o, s.sig, big.NewInt(1000), nil)

	s.NotNil(err)
}

func (s *SwapServiceTestSuite) Test_Settle_RetriesUntilWindowsOpen() {
	orderHash := crypto.Keccak256Hash([]byte("order"))

	s.mockSecrets.EXPECT().Secret(orderHash, uint64(0)).Return(s.secret, nil)
	tooEarly := s.mockResolver.EXPECT().
		Withdraw(gomock.Any(), resolver.SideDst, orderHash, s.secret, gomock.Nil()).
		Return(resolver.Swap{}, resolver.ErrTooEarly)
	dstDone := s.mockResolver.EXPECT().
		Withdraw(gomock.Any(), resolver.SideDst, orderHash, s.secret, gomock.Nil()).
		Return(resolver.Swap{}, nil).
		After(tooEarly)
	srcDone := s.mockResolver.EXPECT().
		Withdraw(gomock.Any(), resolver.SideSrc, orderHash, s.secret, gomock.Nil()).
		Return(resolver.Swap{}, nil).
		After(dstDone)
	s.mockMetrics.EXPECT().TrackSwapSettled(orderHash).After(srcDone)

	err := s.service.Settle(context.Background(), orderHash, nil)

	s.Nil(err)
}

func (s *SwapServiceTestSuite) Test_Settle_ReadsPartialFillSecret() {
	orderHash := crypto.Keccak256Hash([]byte("order"))
	partial := &resolver.PartialFill{Index: 3}
	partialSecret := crypto.Keccak256Hash([]byte("secret 3"))

	s.mockSecrets.EXPECT().Secret(orderHash, uint64(3)).Return(partialSecret, nil)
	dstDone := s.mockResolver.EXPECT().
		Withdraw(gomock.Any(), resolver.SideDst, orderHash, partialSecret, partial).
		Return(resolver.Swap{}, nil)
	srcDone := s.mockResolver.EXPECT().
		Withdraw(gomock.Any(), resolver.SideSrc, orderHash, partialSecret, partial).
		Return(resolver.Swap{}, nil).
		After(dstDone)
	s.mockMetrics.EXPECT().TrackSwapSettled(orderHash).After(srcDone)

	err := s.service.Settle(context.Background(), orderHash, partial)

	s.Nil(err)
}

func (s *SwapServiceTestSuite) Test_Settle_MissingSecret() {
	orderHash := crypto.Keccak256Hash([]byte("order"))

	s.mockSecrets.EXPECT().
		Secret(orderHash, uint64(0)).
		Return(common.Hash{}, fmt.Errorf("no secret found"))

	err := s.service.Settle(context.Background(), orderHash, nil)

	s.NotNil(err)
}

func (s *SwapServiceTestSuite) Test_Settle_FatalErrorStopsRetrying() {
	orderHash := crypto.Keccak256Hash([]byte("order"))

	s.mockSecrets.EXPECT().Secret(orderHash, uint64(0)).Return(s.secret, nil)
	s.mockResolver.EXPECT().
		Withdraw(gomock.Any(), resolver.SideDst, orderHash, s.secret, gomock.Nil()).
		Return(resolver.Swap{}, resolver.ErrInvalidSecret)

	err := s.service.Settle(context.Background(), orderHash, nil)

	s.ErrorIs(err, resolver.ErrInvalidSecret)
}

func (s *SwapServiceTestSuite) Test_Abort_CancelsBothSides() {
	orderHash := crypto.Keccak256Hash([]byte("order"))

	s.mockResolver.EXPECT().
		Cancel(gomock.Any(), resolver.SideDst, orderHash).
		Return(resolver.Swap{}, resolver.ErrTooEarly)
	s.mockResolver.EXPECT().
		Cancel(gomock.Any(), resolver.SideDst, orderHash).
		Return(resolver.Swap{}, nil)
	s.mockResolver.EXPECT().
		Cancel(gomock.Any(), resolver.SideSrc, orderHash).
		Return(resolver.Swap{}, nil)
	s.mockMetrics.EXPECT().TrackSwapCancelled(orderHash)

	err := s.service.Abort(context.Background(), orderHash)

	s.Nil(err)
}

func (s *SwapServiceTestSuite) Test_Abort_PropagatesCancellationFailure() {
	orderHash := crypto.Keccak256Hash([]byte("order"))

	s.mockResolver.EXPECT().
		Cancel(gomock.Any(), resolver.SideDst, orderHash).
		Return(resolver.Swap{}, resolver.ErrAlreadyResolved)
	s.mockResolver.EXPECT().
		Cancel(gomock.Any(), resolver.SideSrc, orderHash).
		Return(resolver.Swap{}, nil).
		AnyTimes()

	err := s.service.Abort(context.Background(), orderHash)

	s.ErrorIs(err, resolver.ErrAlreadyResolved)
}
