package hashlock_test

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hyphalabs/crosschain-resolver/protocol/hashlock"
	"github.com/stretchr/testify/suite"
)

type HashLockTestSuite struct {
	suite.Suite

	secrets []common.Hash
}

func TestRunHashLockTestSuite(t *testing.T) {
	suite.Run(t, new(HashLockTestSuite))
}

func (s *HashLockTestSuite) SetupTest() {
	s.secrets = make([]common.Hash, 8)
	for i := range s.secrets {
		s.secrets[i] = common.BigToHash(common.Big1)
		s.secrets[i][0] = byte(i + 1)
	}
}

func (s *HashLockTestSuite) Test_ForSingleFill_ZeroSecret() {
	_, err := hashlock.ForSingleFill(common.Hash{})

	s.ErrorIs(err, hashlock.ErrZeroSecret)
}

func (s *HashLockTestSuite) Test_ForSingleFill_MatchesSecretHash() {
	lock, err := hashlock.ForSingleFill(s.secrets[0])

	s.Nil(err)
	s.Equal(hashlock.HashSecret(s.secrets[0]), lock.Hash())
}

func (s *HashLockTestSuite) Test_ForSingleFill_KeepsHighBitDigest() {
	// keccak(0x...01) starts with 0xb1; the lock has to stay the raw
	// digest or the on-chain hash check would fail
	secret := common.HexToHash("0x01")

	lock, err := hashlock.ForSingleFill(secret)

	s.Nil(err)
	s.Equal(hashlock.HashSecret(secret), lock.Hash())
	s.Equal(byte(0xb1), lock.Hash()[0])
}

func (s *HashLockTestSuite) Test_ForMultipleFills_TooFewLeaves() {
	leaves := hashlock.MerkleLeaves(s.secrets[:1])

	_, err := hashlock.ForMultipleFills(leaves)

	s.ErrorIs(err, hashlock.ErrTooFewLeaves)
}

func (s *HashLockTestSuite) Test_ForMultipleFills_SetsMultipleFillFlag() {
	leaves := hashlock.MerkleLeaves(s.secrets)

	lock, err := hashlock.ForMultipleFills(leaves)

	s.Nil(err)
	s.True(lock.IsMultipleFill())
}

func (s *HashLockTestSuite) Test_Verify_RoundTrip() {
	for length := 2; length <= len(s.secrets); length++ {
		secrets := s.secrets[:length]
		leaves := hashlock.MerkleLeaves(secrets)
		lock, err := hashlock.ForMultipleFills(leaves)
		s.Nil(err)

		for i, secret := range secrets {
			proof, err := hashlock.Proof(leaves, i)
			s.Nil(err)

			ok := hashlock.Verify(lock, proof, uint64(i), hashlock.HashSecret(secret))
			s.True(ok, "length %d index %d", length, i)
		}
	}
}

func (s *HashLockTestSuite) Test_Verify_RootWithHighBitSet() {
	// this tree's natural merkle root starts with 0x8c, colliding with
	// the multi-fill marker bit; proofs have to verify anyway
	secrets := make([]common.Hash, 3)
	for i := range secrets {
		secrets[i] = crypto.Keccak256Hash([]byte(fmt.Sprintf("order a secret %d", i)))
	}
	leaves := hashlock.MerkleLeaves(secrets)
	lock, err := hashlock.ForMultipleFills(leaves)
	s.Nil(err)

	for i, secret := range secrets {
		proof, err := hashlock.Proof(leaves, i)
		s.Nil(err)

		s.True(hashlock.Verify(lock, proof, uint64(i), hashlock.HashSecret(secret)), "index %d", i)
	}

	proof, err := hashlock.Proof(leaves, 0)
	s.Nil(err)
	s.False(hashlock.Verify(lock, proof, 0, hashlock.HashSecret(crypto.Keccak256Hash([]byte("wrong")))))
}

func (s *HashLockTestSuite) Test_Verify_MutatedProofFails() {
	leaves := hashlock.MerkleLeaves(s.secrets)
	lock, _ := hashlock.ForMultipleFills(leaves)
	proof, _ := hashlock.Proof(leaves, 3)

	for i := range proof {
		mutated := append([]common.Hash{}, proof...)
		mutated[i][5] ^= 0xff

		s.False(hashlock.Verify(lock, mutated, 3, hashlock.HashSecret(s.secrets[3])))
	}
}

func (s *HashLockTestSuite) Test_Verify_WrongIndexFails() {
	leaves := hashlock.MerkleLeaves(s.secrets)
	lock, _ := hashlock.ForMultipleFills(leaves)
	proof, _ := hashlock.Proof(leaves, 3)

	s.False(hashlock.Verify(lock, proof, 4, hashlock.HashSecret(s.secrets[3])))
}

func (s *HashLockTestSuite) Test_Verify_WrongSecretFails() {
	leaves := hashlock.MerkleLeaves(s.secrets)
	lock, _ := hashlock.ForMultipleFills(leaves)
	proof, _ := hashlock.Proof(leaves, 3)

	s.False(hashlock.Verify(lock, proof, 3, hashlock.HashSecret(s.secrets[4])))
}

func (s *HashLockTestSuite) Test_Proof_IndexOutOfRange() {
	leaves := hashlock.MerkleLeaves(s.secrets)

	_, err := hashlock.Proof(leaves, len(leaves))

	s.NotNil(err)
}
