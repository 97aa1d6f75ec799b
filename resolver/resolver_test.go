package resolver_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hyphalabs/crosschain-resolver/chains/evm/calls/events"
	"github.com/hyphalabs/crosschain-resolver/protocol/escrow"
	"github.com/hyphalabs/crosschain-resolver/protocol/hashlock"
	"github.com/hyphalabs/crosschain-resolver/protocol/order"
	"github.com/hyphalabs/crosschain-resolver/protocol/timelock"
	"github.com/hyphalabs/crosschain-resolver/resolver"
	mock_resolver "github.com/hyphalabs/crosschain-resolver/resolver/mock"
)

var (
	srcFactoryAddress = common.HexToAddress("0x1111111111111111111111111111111111111111")
	dstFactoryAddress = common.HexToAddress("0x2222222222222222222222222222222222222222")
	resolverAddress   = common.HexToAddress("0x3333333333333333333333333333333333333333")
	makerAddress      = common.HexToAddress("0x4444444444444444444444444444444444444444")
	srcToken          = common.HexToAddress("0x5555555555555555555555555555555555555555")
	dstToken          = common.HexToAddress("0x6666666666666666666666666666666666666666")
	srcProxyHash      = crypto.Keccak256Hash([]byte("src proxy"))
	dstProxyHash      = crypto.Keccak256Hash([]byte("dst proxy"))

	testTimelocks = timelock.Timelocks{
		SrcWithdrawal:         10,
		SrcPublicWithdrawal:   120,
		SrcCancellation:       240,
		SrcPublicCancellation: 360,
		DstWithdrawal:         10,
		DstPublicWithdrawal:   100,
		DstCancellation:       200,
	}
)

type ResolverTestSuite struct {
	suite.Suite

	mockSrcResolver *mock_resolver.MockResolverCaller
	mockDstResolver *mock_resolver.MockResolverCaller
	mockSrcListener *mock_resolver.MockEventListener
	mockDstListener *mock_resolver.MockEventListener
	mockSrcClient   *mock_resolver.MockChainClient
	mockDstClient   *mock_resolver.MockChainClient
	mockSrcEscrow   *mock_resolver.MockEscrowCaller
	mockDstEscrow   *mock_resolver.MockEscrowCaller

	swaps    *resolver.SwapStore
	resolver *resolver.Resolver

	secret common.Hash
}

func TestRunResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockSrcResolver = mock_resolver.NewMockResolverCaller(ctrl)
	s.mockDstResolver = mock_resolver.NewMockResolverCaller(ctrl)
	s.mockSrcListener = mock_resolver.NewMockEventListener(ctrl)
	s.mockDstListener = mock_resolver.NewMockEventListener(ctrl)
	s.mockSrcClient = mock_resolver.NewMockChainClient(ctrl)
	s.mockDstClient = mock_resolver.NewMockChainClient(ctrl)
	s.mockSrcEscrow = mock_resolver.NewMockEscrowCaller(ctrl)
	s.mockDstEscrow = mock_resolver.NewMockEscrowCaller(ctrl)

	s.swaps = resolver.NewSwapStore()
	s.secret = crypto.Keccak256Hash([]byte("secret"))

	src := resolver.Chain{
		ChainID:        big.NewInt(1),
		Client:         s.mockSrcClient,
		Listener:       s.mockSrcListener,
		Resolver:       s.mockSrcResolver,
		NewEscrow:      func(common.Address) resolver.EscrowCaller { return s.mockSrcEscrow },
		Factory:        escrow.NewFactory(srcFactoryAddress),
		FactoryAddress: srcFactoryAddress,
		SrcProxyHash:   srcProxyHash,
		DstProxyHash:   dstProxyHash,
	}
	dst := resolver.Chain{
		ChainID:        big.NewInt(10),
		Client:         s.mockDstClient,
		Listener:       s.mockDstListener,
		Resolver:       s.mockDstResolver,
		NewEscrow:      func(common.Address) resolver.EscrowCaller { return s.mockDstEscrow },
		Factory:        escrow.NewFactory(dstFactoryAddress),
		FactoryAddress: dstFactoryAddress,
		SrcProxyHash:   srcProxyHash,
		DstProxyHash:   dstProxyHash,
	}

	s.resolver = resolver.New(src, dst, resolverAddress, s.swaps)
}

func (s *ResolverTestSuite) singleFillOrder() *order.Order {
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

func (s *ResolverTestSuite) srcCreatedEvent(o *order.Order, orderHash common.Hash, fillAmount *big.Int, deployedAt uint64) *events.SrcEscrowCreated {
	e := &events.SrcEscrowCreated{BlockTimestamp: deployedAt}
	e.SrcImmutables.OrderHash = orderHash
	e.SrcImmutables.Hashlock = o.Escrow.Hashlock
	e.SrcImmutables.Maker = o.Terms.Maker
	e.SrcImmutables.Taker = resolverAddress
	e.SrcImmutables.Token = o.Terms.MakerAsset
	e.SrcImmutables.Amount = fillAmount
	e.SrcImmutables.SafetyDeposit = o.Escrow.SrcSafetyDeposit
	e.SrcImmutables.Timelocks = o.Escrow.Timelocks.Pack()
	e.DstImmutablesComplement.Maker = o.Terms.Receiver
	e.DstImmutablesComplement.Amount = o.TakingAmountFor(fillAmount)
	e.DstImmutablesComplement.Token = o.Escrow.DstToken
	e.DstImmutablesComplement.SafetyDeposit = o.Escrow.DstSafetyDeposit
	e.DstImmutablesComplement.ChainId = o.Escrow.DstChainID
	return e
}

// deploySrc runs a successful source deployment against the mocks and
// returns the resulting swap.
func (s *ResolverTestSuite) deploySrc(o *order.Order, fillAmount *big.Int) resolver.Swap {
	orderHash, err := o.Hash(big.NewInt(1))
	s.Nil(err)

	txHash := crypto.Keccak256Hash([]byte("src tx"))
	s.mockSrcResolver.EXPECT().DeploySrc(
		gomock.Any(), o, gomock.Any(), gomock.Any(), fillAmount, gomock.Any(), gomock.Any(), gomock.Any(),
	).Return(&txHash, nil)
	s.mockSrcClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(100),
	}, nil)
	s.mockSrcListener.EXPECT().WaitForSrcEscrowCreated(
		gomock.Any(), srcFactoryAddress, orderHash, big.NewInt(100),
	).Return(s.srcCreatedEvent(o, orderHash, fillAmount, 1_000_000), nil)

	sig := make([]byte, 65)
	swap, err := s.resolver.DeploySrc(context.Background(), o, sig, fillAmount, nil)
	s.Nil(err)
	return swap
}

// deployDst runs a successful destination deployment for a swap in the
// src-deployed state.
func (s *ResolverTestSuite) deployDst(swap resolver.Swap, deployedAt uint64) resolver.Swap {
	derived, _, err := escrow.NewFactory(dstFactoryAddress).DstAddress(
		swap.SrcImmutables, swap.Complement, resolverAddress, deployedAt, dstProxyHash)
	s.Nil(err)

	txHash := crypto.Keccak256Hash([]byte("dst tx"))
	s.mockDstResolver.EXPECT().DeployDst(gomock.Any(), gomock.Any(), gomock.Any()).Return(&txHash, nil)
	s.mockDstClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(200),
	}, nil)
	s.mockDstListener.EXPECT().WaitForDstEscrowCreated(
		gomock.Any(), dstFactoryAddress, swap.SrcImmutables.Hashlock.Hash(), big.NewInt(200),
	).Return(&events.DstEscrowCreated{
		Escrow:         derived,
		Hashlock:       swap.SrcImmutables.Hashlock,
		Taker:          resolverAddress,
		BlockTimestamp: deployedAt,
	}, nil)

	updated, err := s.resolver.DeployDst(context.Background(), swap.OrderHash)
	s.Nil(err)
	return updated
}

func (s *ResolverTestSuite) chainAt(client *mock_resolver.MockChainClient, timestamp uint64) {
	head := big.NewInt(500)
	block := ethTypes.NewBlockWithHeader(&ethTypes.Header{
		Number: head,
		Time:   timestamp,
	})
	client.EXPECT().LatestBlock().Return(head, nil)
	client.EXPECT().BlockByNumber(gomock.Any(), head).Return(block, nil)
}

func (s *ResolverTestSuite) Test_DeploySrc_TracksDeployedImmutables() {
	o := s.singleFillOrder()

	swap := s.deploySrc(o, big.NewInt(1000))

	s.Equal(resolver.StateSrcDeployed, swap.State())
	s.Equal(uint32(1_000_000), swap.SrcImmutables.Timelocks.DeployedAt)
	s.Equal(resolverAddress, swap.SrcImmutables.Taker)
	s.NotEqual(common.Address{}, swap.SrcEscrow)
	s.Equal(big.NewInt(900), swap.Complement.Amount)
}

func (s *ResolverTestSuite) Test_DeploySrc_RejectsDuplicateOrder() {
	o := s.singleFillOrder()
	_ = s.deploySrc(o, big.NewInt(1000))

	_, err := s.resolver.DeploySrc(context.Background(), o, make([]byte, 65), big.NewInt(1000), nil)

	s.ErrorIs(err, resolver.ErrSwapExists)
}

func (s *ResolverTestSuite) Test_DeploySrc_RejectsPartialFillWhenNotAllowed() {
	o := s.singleFillOrder()

	_, err := s.resolver.DeploySrc(context.Background(), o, make([]byte, 65), big.NewInt(500), nil)

	s.NotNil(err)
}

func (s *ResolverTestSuite) Test_DeploySrc_RejectsProofOnSingleFillOrder() {
	o := s.singleFillOrder()

	_, err := s.resolver.DeploySrc(context.Background(), o, make([]byte, 65), big.NewInt(1000), &resolver.PartialFill{})

	s.NotNil(err)
}

func (s *ResolverTestSuite) Test_DeploySrc_RevertedFill() {
	o := s.singleFillOrder()
	txHash := crypto.Keccak256Hash([]byte("src tx"))
	s.mockSrcResolver.EXPECT().DeploySrc(
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
	).Return(&txHash, nil)
	s.mockSrcClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusFailed,
		BlockNumber: big.NewInt(100),
	}, nil)

	_, err := s.resolver.DeploySrc(context.Background(), o, make([]byte, 65), big.NewInt(1000), nil)

	s.ErrorIs(err, resolver.ErrTxReverted)
}

func (s *ResolverTestSuite) Test_DeploySrc_FailedFillReleasesOrder() {
	o := s.singleFillOrder()
	txHash := crypto.Keccak256Hash([]byte("src tx"))
	s.mockSrcResolver.EXPECT().DeploySrc(
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
	).Return(&txHash, nil)
	s.mockSrcClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusFailed,
		BlockNumber: big.NewInt(100),
	}, nil)

	_, err := s.resolver.DeploySrc(context.Background(), o, make([]byte, 65), big.NewInt(1000), nil)
	s.ErrorIs(err, resolver.ErrTxReverted)

	// the failed attempt left no record behind, so the retry goes through
	swap := s.deploySrc(o, big.NewInt(1000))
	s.Equal(resolver.StateSrcDeployed, swap.State())
}

func (s *ResolverTestSuite) Test_Withdraw_SingleFillHighBitLock() {
	// keccak of this secret starts with 0xb1, colliding with the merkle
	// marker bit; a single-fill withdrawal must still accept the bare
	// secret without a proof
	secret := common.HexToHash("0x01")
	lock, err := hashlock.ForSingleFill(secret)
	s.Nil(err)
	o := s.singleFillOrder()
	o.Escrow.Hashlock = lock

	swap := s.deploySrc(o, big.NewInt(1000))
	swap = s.deployDst(swap, 1_000_050)

	s.chainAt(s.mockDstClient, 1_000_050+20)
	txHash := crypto.Keccak256Hash([]byte("withdraw tx"))
	s.mockDstEscrow.EXPECT().Withdraw(secret, swap.DstImmutables, gomock.Any()).Return(&txHash, nil)
	s.mockDstClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)

	swap, err = s.resolver.Withdraw(context.Background(), resolver.SideDst, swap.OrderHash, secret, nil)

	s.Nil(err)
	s.Equal(resolver.ResolutionWithdrawn, swap.DstResolution)
}

func (s *ResolverTestSuite) Test_DeployDst_VerifiesDerivedAddress() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))

	swap = s.deployDst(swap, 1_000_050)

	s.Equal(resolver.StateDstDeployed, swap.State())
	s.Equal(uint32(1_000_050), swap.DstImmutables.Timelocks.DeployedAt)
	s.Equal(swap.Complement.Amount, swap.DstImmutables.Amount)
	s.Equal(resolverAddress, swap.DstImmutables.Taker)
}

func (s *ResolverTestSuite) Test_DeployDst_RejectsAddressMismatch() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))

	txHash := crypto.Keccak256Hash([]byte("dst tx"))
	s.mockDstResolver.EXPECT().DeployDst(gomock.Any(), gomock.Any(), gomock.Any()).Return(&txHash, nil)
	s.mockDstClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(200),
	}, nil)
	s.mockDstListener.EXPECT().WaitForDstEscrowCreated(
		gomock.Any(), dstFactoryAddress, gomock.Any(), gomock.Any(),
	).Return(&events.DstEscrowCreated{
		Escrow:         common.HexToAddress("0xdead"),
		Hashlock:       swap.SrcImmutables.Hashlock,
		BlockTimestamp: 1_000_050,
	}, nil)

	_, err := s.resolver.DeployDst(context.Background(), swap.OrderHash)

	s.NotNil(err)
}

func (s *ResolverTestSuite) Test_DeployDst_RequiresSrcDeployment() {
	_, err := s.resolver.DeployDst(context.Background(), crypto.Keccak256Hash([]byte("unknown")))
	s.ErrorIs(err, resolver.ErrSwapNotFound)

	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))
	swap = s.deployDst(swap, 1_000_050)

	_, err = s.resolver.DeployDst(context.Background(), swap.OrderHash)
	s.ErrorIs(err, resolver.ErrInvalidState)
}

func (s *ResolverTestSuite) Test_Withdraw_PrivateWindow() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))
	swap = s.deployDst(swap, 1_000_050)

	s.chainAt(s.mockDstClient, 1_000_050+20)
	txHash := crypto.Keccak256Hash([]byte("withdraw tx"))
	s.mockDstEscrow.EXPECT().Withdraw(s.secret, swap.DstImmutables, gomock.Any()).Return(&txHash, nil)
	s.mockDstClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)

	swap, err := s.resolver.Withdraw(context.Background(), resolver.SideDst, swap.OrderHash, s.secret, nil)

	s.Nil(err)
	s.Equal(resolver.ResolutionWithdrawn, swap.DstResolution)
}

func (s *ResolverTestSuite) Test_Withdraw_PublicWindow() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))
	swap = s.deployDst(swap, 1_000_050)

	s.chainAt(s.mockDstClient, 1_000_050+150)
	txHash := crypto.Keccak256Hash([]byte("withdraw tx"))
	s.mockDstEscrow.EXPECT().PublicWithdraw(s.secret, swap.DstImmutables, gomock.Any()).Return(&txHash, nil)
	s.mockDstClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)

	_, err := s.resolver.Withdraw(context.Background(), resolver.SideDst, swap.OrderHash, s.secret, nil)

	s.Nil(err)
}

func (s *ResolverTestSuite) Test_Withdraw_BeforeWindowOpens() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))
	swap = s.deployDst(swap, 1_000_050)

	s.chainAt(s.mockDstClient, 1_000_050+5)

	_, err := s.resolver.Withdraw(context.Background(), resolver.SideDst, swap.OrderHash, s.secret, nil)

	s.ErrorIs(err, resolver.ErrTooEarly)
}

func (s *ResolverTestSuite) Test_Withdraw_WrongSecret() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))
	swap = s.deployDst(swap, 1_000_050)

	wrong := crypto.Keccak256Hash([]byte("wrong"))
	_, err := s.resolver.Withdraw(context.Background(), resolver.SideDst, swap.OrderHash, wrong, nil)

	s.ErrorIs(err, resolver.ErrInvalidSecret)
}

func (s *ResolverTestSuite) Test_Withdraw_AlreadyResolved() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))
	swap = s.deployDst(swap, 1_000_050)

	s.chainAt(s.mockDstClient, 1_000_050+20)
	txHash := crypto.Keccak256Hash([]byte("withdraw tx"))
	s.mockDstEscrow.EXPECT().Withdraw(s.secret, gomock.Any(), gomock.Any()).Return(&txHash, nil)
	s.mockDstClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)
	_, err := s.resolver.Withdraw(context.Background(), resolver.SideDst, swap.OrderHash, s.secret, nil)
	s.Nil(err)

	_, err = s.resolver.Withdraw(context.Background(), resolver.SideDst, swap.OrderHash, s.secret, nil)

	s.ErrorIs(err, resolver.ErrAlreadyResolved)
}

func (s *ResolverTestSuite) Test_Cancel_PrivateWindow() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))

	s.chainAt(s.mockSrcClient, 1_000_000+250)
	txHash := crypto.Keccak256Hash([]byte("cancel tx"))
	s.mockSrcEscrow.EXPECT().Cancel(swap.SrcImmutables, gomock.Any()).Return(&txHash, nil)
	s.mockSrcClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)

	swap, err := s.resolver.Cancel(context.Background(), resolver.SideSrc, swap.OrderHash)

	s.Nil(err)
	s.Equal(resolver.ResolutionCancelled, swap.SrcResolution)
}

func (s *ResolverTestSuite) Test_Cancel_PublicWindow() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))

	s.chainAt(s.mockSrcClient, 1_000_000+400)
	txHash := crypto.Keccak256Hash([]byte("cancel tx"))
	s.mockSrcEscrow.EXPECT().PublicCancel(swap.SrcImmutables, gomock.Any()).Return(&txHash, nil)
	s.mockSrcClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)

	_, err := s.resolver.Cancel(context.Background(), resolver.SideSrc, swap.OrderHash)

	s.Nil(err)
}

func (s *ResolverTestSuite) Test_Cancel_BeforeWindowOpens() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))

	s.chainAt(s.mockSrcClient, 1_000_000+100)

	_, err := s.resolver.Cancel(context.Background(), resolver.SideSrc, swap.OrderHash)

	s.ErrorIs(err, resolver.ErrTooEarly)
}

func (s *ResolverTestSuite) Test_Settle_WithdrawsDestinationFirst() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))
	swap = s.deployDst(swap, 1_000_050)

	s.chainAt(s.mockDstClient, 1_000_050+20)
	s.chainAt(s.mockSrcClient, 1_000_000+20)

	dstTx := crypto.Keccak256Hash([]byte("dst withdraw"))
	srcTx := crypto.Keccak256Hash([]byte("src withdraw"))
	dstCall := s.mockDstEscrow.EXPECT().Withdraw(s.secret, swap.DstImmutables, gomock.Any()).Return(&dstTx, nil)
	s.mockSrcEscrow.EXPECT().Withdraw(s.secret, swap.SrcImmutables, gomock.Any()).Return(&srcTx, nil).After(dstCall)
	s.mockDstClient.EXPECT().WaitAndReturnTxReceipt(dstTx).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)
	s.mockSrcClient.EXPECT().WaitAndReturnTxReceipt(srcTx).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)

	swap, err := s.resolver.Settle(context.Background(), swap.OrderHash, s.secret, nil)

	s.Nil(err)
	s.Equal(resolver.StateWithdrawn, swap.State())
}

func (s *ResolverTestSuite) Test_Settle_StopsWhenDestinationFails() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))
	swap = s.deployDst(swap, 1_000_050)

	s.chainAt(s.mockDstClient, 1_000_050+5)

	_, err := s.resolver.Settle(context.Background(), swap.OrderHash, s.secret, nil)

	s.ErrorIs(err, resolver.ErrTooEarly)
	current, err := s.resolver.Swap(swap.OrderHash)
	s.Nil(err)
	s.Equal(resolver.ResolutionPending, current.SrcResolution)
}

func (s *ResolverTestSuite) Test_Abort_CancelsBothSides() {
	o := s.singleFillOrder()
	swap := s.deploySrc(o, big.NewInt(1000))
	swap = s.deployDst(swap, 1_000_050)

	s.chainAt(s.mockSrcClient, 1_000_000+250)
	s.chainAt(s.mockDstClient, 1_000_050+250)

	srcTx := crypto.Keccak256Hash([]byte("src cancel"))
	dstTx := crypto.Keccak256Hash([]byte("dst cancel"))
	s.mockSrcEscrow.EXPECT().Cancel(swap.SrcImmutables, gomock.Any()).Return(&srcTx, nil)
	s.mockDstEscrow.EXPECT().Cancel(swap.DstImmutables, gomock.Any()).Return(&dstTx, nil)
	s.mockSrcClient.EXPECT().WaitAndReturnTxReceipt(srcTx).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)
	s.mockDstClient.EXPECT().WaitAndReturnTxReceipt(dstTx).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)

	err := s.resolver.Abort(context.Background(), swap.OrderHash)

	s.Nil(err)
	current, err := s.resolver.Swap(swap.OrderHash)
	s.Nil(err)
	s.Equal(resolver.StateCancelled, current.State())
}

func (s *ResolverTestSuite) Test_MultiFillOrder_FillAndWithdrawWithProof() {
	secrets := make([]common.Hash, 4)
	for i := range secrets {
		secrets[i] = crypto.Keccak256Hash([]byte(fmt.Sprintf("secret %d", i)))
	}
	leaves := hashlock.MerkleLeaves(secrets)
	lock, err := hashlock.ForMultipleFills(leaves)
	s.Nil(err)
	proof, err := hashlock.Proof(leaves, 1)
	s.Nil(err)
	partial := &resolver.PartialFill{
		Proof:      proof,
		Index:      1,
		SecretHash: hashlock.HashSecret(secrets[1]),
	}

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
		order.FillPolicy{AllowPartialFills: true, AllowMultipleFills: true, Nonce: big.NewInt(1)},
	)
	s.Nil(err)

	orderHash, err := o.Hash(big.NewInt(1))
	s.Nil(err)
	txHash := crypto.Keccak256Hash([]byte("src tx"))
	s.mockSrcResolver.EXPECT().DeploySrc(
		gomock.Any(), o, gomock.Any(), gomock.Any(), big.NewInt(500), gomock.Any(), gomock.Any(), gomock.Any(),
	).Return(&txHash, nil)
	s.mockSrcClient.EXPECT().WaitAndReturnTxReceipt(txHash).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(100),
	}, nil)
	s.mockSrcListener.EXPECT().WaitForSrcEscrowCreated(
		gomock.Any(), srcFactoryAddress, orderHash, big.NewInt(100),
	).Return(s.srcCreatedEvent(o, orderHash, big.NewInt(500), 1_000_000), nil)

	swap, err := s.resolver.DeploySrc(context.Background(), o, make([]byte, 65), big.NewInt(500), partial)
	s.Nil(err)

	s.chainAt(s.mockSrcClient, 1_000_000+20)
	wTx := crypto.Keccak256Hash([]byte("withdraw tx"))
	s.mockSrcEscrow.EXPECT().Withdraw(secrets[1], swap.SrcImmutables, gomock.Any()).Return(&wTx, nil)
	s.mockSrcClient.EXPECT().WaitAndReturnTxReceipt(wTx).Return(&ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(501),
	}, nil)

	_, err = s.resolver.Withdraw(context.Background(), resolver.SideSrc, swap.OrderHash, secrets[1], partial)
	s.Nil(err)

	// a proof for a different leaf must not authorize this secret
	otherProof, err := hashlock.Proof(leaves, 2)
	s.Nil(err)
	_, err = s.resolver.Withdraw(context.Background(), resolver.SideSrc, swap.OrderHash, secrets[1], &resolver.PartialFill{
		Proof:      otherProof,
		Index:      2,
		SecretHash: hashlock.HashSecret(secrets[1]),
	})
	s.ErrorIs(err, resolver.ErrAlreadyResolved)
}

func (s *ResolverTestSuite) Test_MultiFillOrder_RejectsInvalidProof() {
	secrets := []common.Hash{
		crypto.Keccak256Hash([]byte("a")),
		crypto.Keccak256Hash([]byte("b")),
	}
	leaves := hashlock.MerkleLeaves(secrets)
	lock, err := hashlock.ForMultipleFills(leaves)
	s.Nil(err)
	o := s.singleFillOrder()
	o.Policy.AllowMultipleFills = true
	o.Policy.AllowPartialFills = true
	o.Escrow.Hashlock = lock

	_, err = s.resolver.DeploySrc(context.Background(), o, make([]byte, 65), big.NewInt(1000), &resolver.PartialFill{
		Proof:      []common.Hash{crypto.Keccak256Hash([]byte("garbage"))},
		Index:      0,
		SecretHash: hashlock.HashSecret(secrets[0]),
	})

	s.ErrorIs(err, resolver.ErrInvalidProof)
}
