package signature_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/hyphalabs/crosschain-resolver/chains/evm/signature"
)

type CompactTestSuite struct {
	suite.Suite
}

func TestRunCompactTestSuite(t *testing.T) {
	suite.Run(t, new(CompactTestSuite))
}

func (s *CompactTestSuite) Test_Compact_RoundTripsAgainstSigner() {
	key, err := crypto.GenerateKey()
	s.Nil(err)

	digest := crypto.Keccak256([]byte("order"))
	sig, err := crypto.Sign(digest, key)
	s.Nil(err)

	r, vs, err := signature.Compact(sig)
	s.Nil(err)

	s.Equal(common.BytesToHash(sig[:32]), common.Hash(r))
	// low 255 bits of vs carry s
	sWord := vs
	sWord[0] &= 0x7f
	s.Equal(common.BytesToHash(sig[32:64]), common.Hash(sWord))
	s.Equal(sig[64]&1, vs[0]>>7)
}

func (s *CompactTestSuite) Test_Compact_LegacyRecoveryID() {
	sig := make([]byte, 65)
	sig[64] = 28

	_, vs, err := signature.Compact(sig)

	s.Nil(err)
	s.Equal(byte(0x80), vs[0])
}

func (s *CompactTestSuite) Test_Compact_RejectsBadLength() {
	_, _, err := signature.Compact(make([]byte, 64))

	s.NotNil(err)
}

func (s *CompactTestSuite) Test_Compact_RejectsBadRecoveryID() {
	sig := make([]byte, 65)
	sig[64] = 5

	_, _, err := signature.Compact(sig)

	s.NotNil(err)
}
