package privacy_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/hyphalabs/crosschain-resolver/privacy"
	"github.com/hyphalabs/crosschain-resolver/protocol/hashlock"
	"github.com/hyphalabs/crosschain-resolver/protocol/order"
	"github.com/hyphalabs/crosschain-resolver/protocol/timelock"
)

type PayloadTestSuite struct {
	suite.Suite

	order *order.Order
}

func TestRunPayloadTestSuite(t *testing.T) {
	suite.Run(t, new(PayloadTestSuite))
}

func (s *PayloadTestSuite) SetupTest() {
	lock, err := hashlock.ForSingleFill(crypto.Keccak256Hash([]byte("secret")))
	s.Nil(err)

	s.order, err = order.New(
		common.HexToAddress("0x1111111111111111111111111111111111111111"),
		order.Terms{
			Maker:        common.HexToAddress("0x4444444444444444444444444444444444444444"),
			Receiver:     common.HexToAddress("0x4444444444444444444444444444444444444444"),
			MakerAsset:   common.HexToAddress("0x5555555555555555555555555555555555555555"),
			TakerAsset:   common.HexToAddress("0x6666666666666666666666666666666666666666"),
			MakingAmount: big.NewInt(1000),
			TakingAmount: big.NewInt(900),
			Salt:         big.NewInt(42),
		},
		order.EscrowExtension{
			Hashlock: lock,
			Timelocks: timelock.Timelocks{
				SrcWithdrawal:         10,
				SrcPublicWithdrawal:   120,
				SrcCancellation:       240,
				SrcPublicCancellation: 360,
				DstWithdrawal:         10,
				DstPublicWithdrawal:   100,
				DstCancellation:       200,
			},
			SrcChainID:       big.NewInt(1),
			DstChainID:       big.NewInt(10),
			DstToken:         common.HexToAddress("0x7777777777777777777777777777777777777777"),
			SrcSafetyDeposit: big.NewInt(5),
			DstSafetyDeposit: big.NewInt(5),
		},
		order.AuctionDetails{
			StartTime:       1_700_000_000,
			Duration:        180,
			InitialRateBump: 50_000,
			Points: []order.AuctionPoint{
				{Delay: 60, Coefficient: 25_000},
			},
		},
		[]order.WhitelistEntry{
			{Address: common.HexToAddress("0x8888888888888888888888888888888888888888"), AllowFrom: 1_700_000_100},
		},
		order.FillPolicy{Nonce: big.NewInt(7)},
	)
	s.Nil(err)
}

func (s *PayloadTestSuite) Test_Decode_RoundTripsOrder() {
	sig := crypto.Keccak256([]byte("signature"))
	data, err := privacy.EncodeOrderPayload(s.order, sig, big.NewInt(500))
	s.Nil(err)

	decoded, decodedSig, fillAmount, err := privacy.DecodeOrderPayload(data)

	s.Nil(err)
	s.Equal(s.order, decoded)
	s.Equal(sig, decodedSig)
	s.Equal(big.NewInt(500), fillAmount)

	originalHash, err := s.order.Hash(big.NewInt(1))
	s.Nil(err)
	decodedHash, err := decoded.Hash(big.NewInt(1))
	s.Nil(err)
	s.Equal(originalHash, decodedHash)
}

func (s *PayloadTestSuite) Test_Decode_RejectsUnknownVersion() {
	data, err := privacy.EncodeOrderPayload(s.order, make([]byte, 65), big.NewInt(500))
	s.Nil(err)
	// version is the first ABI word
	data[31] = privacy.PayloadVersion + 1

	_, _, _, err = privacy.DecodeOrderPayload(data)

	s.ErrorIs(err, privacy.ErrUnsupportedPayload)
}

func (s *PayloadTestSuite) Test_Decode_RejectsTruncatedPayload() {
	data, err := privacy.EncodeOrderPayload(s.order, make([]byte, 65), big.NewInt(500))
	s.Nil(err)

	_, _, _, err = privacy.DecodeOrderPayload(data[:len(data)/2])

	s.ErrorIs(err, privacy.ErrMalformedPayload)
}

func (s *PayloadTestSuite) Test_Decode_RejectsInvalidOrder() {
	// cancellation before withdrawal fails order construction
	s.order.Escrow.Timelocks.SrcCancellation = 5
	data, err := privacy.EncodeOrderPayload(s.order, make([]byte, 65), big.NewInt(500))
	s.Nil(err)

	_, _, _, err = privacy.DecodeOrderPayload(data)

	s.ErrorIs(err, privacy.ErrMalformedPayload)
}

func (s *PayloadTestSuite) Test_Decode_RejectsMultipleFillOrder() {
	secrets := []common.Hash{
		crypto.Keccak256Hash([]byte("a")),
		crypto.Keccak256Hash([]byte("b")),
	}
	lock, err := hashlock.ForMultipleFills(hashlock.MerkleLeaves(secrets))
	s.Nil(err)
	s.order.Escrow.Hashlock = lock
	s.order.Policy.AllowPartialFills = true
	s.order.Policy.AllowMultipleFills = true

	data, err := privacy.EncodeOrderPayload(s.order, make([]byte, 65), big.NewInt(500))
	s.Nil(err)

	_, _, _, err = privacy.DecodeOrderPayload(data)

	s.ErrorIs(err, privacy.ErrMultipleFillPayload)
}
