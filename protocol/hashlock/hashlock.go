package hashlock

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrZeroSecret   = errors.New("hashlock: secret is zero")
	ErrTooFewLeaves = errors.New("hashlock: merkle tree requires at least 2 leaves")
)

// multipleFillFlag marks the stored hashlock value as a merkle root
// authorizing multiple partial fills instead of a plain secret hash.
const multipleFillFlag = byte(0x80)

// Lock is the 32-byte commitment gating escrow fund release: either the
// keccak256 hash of a single secret, or a merkle root over per-fill secret
// hashes with the top bit forced on. A single-fill lock is a raw digest, so
// its top bit carries no meaning; whether a lock is to be read as a merkle
// root is decided by the order's fill policy, never by inspecting the lock.
type Lock common.Hash

// ForSingleFill commits to a single secret. A zero secret is rejected since
// its hash is a publicly known value and provides no protection.
func ForSingleFill(secret common.Hash) (Lock, error) {
	if secret == (common.Hash{}) {
		return Lock{}, ErrZeroSecret
	}

	return Lock(HashSecret(secret)), nil
}

// ForMultipleFills commits to a merkle root over the given leaves and flags
// the resulting lock as multi-fill.
func ForMultipleFills(leaves []common.Hash) (Lock, error) {
	if len(leaves) < 2 {
		return Lock{}, ErrTooFewLeaves
	}

	root := merkleRoot(leaves)
	root[0] |= multipleFillFlag
	return Lock(root), nil
}

// IsMultipleFill reports whether the top bit is set. Only meaningful for
// locks built by ForMultipleFills; a raw secret hash sets this bit for half
// of all secrets.
func (l Lock) IsMultipleFill() bool {
	return l[0]&multipleFillFlag != 0
}

func (l Lock) Hash() common.Hash {
	return common.Hash(l)
}

func (l Lock) String() string {
	return common.Hash(l).Hex()
}

// HashSecret is the single hash step used both standalone and as the
// leaf preimage.
func HashSecret(secret common.Hash) common.Hash {
	return crypto.Keccak256Hash(secret[:])
}

// MerkleLeaves derives the per-fill leaves from an ordered secret sequence.
// The leaf index is part of the hash domain so a proof cannot be replayed
// at a different fill index.
func MerkleLeaves(secrets []common.Hash) []common.Hash {
	leaves := make([]common.Hash, len(secrets))
	for i, secret := range secrets {
		leaves[i] = leaf(uint64(i), HashSecret(secret))
	}

	return leaves
}

// Proof returns the sibling path from the leaf at index to the root.
func Proof(leaves []common.Hash, index int) ([]common.Hash, error) {
	if index < 0 || index >= len(leaves) {
		return nil, fmt.Errorf("hashlock: leaf index %d out of range", index)
	}

	proof := make([]common.Hash, 0)
	level := append([]common.Hash{}, leaves...)
	for len(level) > 1 {
		sibling := index ^ 1
		if sibling < len(level) {
			proof = append(proof, level[sibling])
		}

		level = parentLevel(level)
		index /= 2
	}

	return proof, nil
}

// Verify recomputes the leaf from (index, secretHash) and folds the proof
// into it. It succeeds only if the result equals the lock's merkle root.
// The stored root carries the multi-fill marker in its top bit, so the
// comparison runs over the remaining 255 bits on both sides.
func Verify(lock Lock, proof []common.Hash, index uint64, secretHash common.Hash) bool {
	root := common.Hash(lock)
	root[0] &^= multipleFillFlag

	node := leaf(index, secretHash)
	for _, sibling := range proof {
		node = hashPair(node, sibling)
	}
	node[0] &^= multipleFillFlag

	return node == root
}

func leaf(index uint64, secretHash common.Hash) common.Hash {
	var idx [8]byte
	binary.BigEndian.PutUint64(idx[:], index)
	return crypto.Keccak256Hash(idx[:], secretHash[:])
}

// hashPair hashes the smaller value first so proof verification does not
// depend on left/right position.
func hashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}

	return crypto.Keccak256Hash(a[:], b[:])
}

func parentLevel(level []common.Hash) []common.Hash {
	next := make([]common.Hash, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 == len(level) {
			next = append(next, level[i])
			continue
		}

		next = append(next, hashPair(level[i], level[i+1]))
	}

	return next
}

func merkleRoot(leaves []common.Hash) common.Hash {
	level := append([]common.Hash{}, leaves...)
	for len(level) > 1 {
		level = parentLevel(level)
	}

	return level[0]
}
