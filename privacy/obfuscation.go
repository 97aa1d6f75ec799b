package privacy

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Decoy records for the observability surface. They never gate or alter
// real fund movement; the stores they land in are read by nothing on the
// execution path.

type FakeVolume struct {
	ID        common.Hash
	Token     common.Address
	Amount    *big.Int
	Timestamp time.Time
}

type StealthOperation struct {
	ID          common.Hash
	Kind        string
	ScheduledAt time.Time
}

// CreateFakeVolume records a decoy transfer for token with an amount
// jittered around base.
func (p *PrivacyResolver) CreateFakeVolume(token common.Address, base *big.Int) *FakeVolume {
	v := &FakeVolume{
		ID:        randomHash(),
		Token:     token,
		Amount:    ObfuscateAmount(base),
		Timestamp: time.Now(),
	}
	p.fakeVolumes.Add(v)

	return v
}

// CreateStealthOperation records a decoy scheduled action with a jittered
// future timestamp.
func (p *PrivacyResolver) CreateStealthOperation(kind string) *StealthOperation {
	return &StealthOperation{
		ID:          randomHash(),
		Kind:        kind,
		ScheduledAt: time.Now().Add(ObfuscateTiming(p.bounds.MinExecute)),
	}
}

// ObfuscateAmount returns a display amount jittered within ±10% of the
// real one. The input is never mutated.
func ObfuscateAmount(amount *big.Int) *big.Int {
	if amount == nil || amount.Sign() <= 0 {
		return new(big.Int)
	}

	span := new(big.Int).Div(amount, big.NewInt(5))
	if span.Sign() == 0 {
		return new(big.Int).Set(amount)
	}

	offset, err := rand.Int(rand.Reader, span)
	if err != nil {
		return new(big.Int).Set(amount)
	}

	jittered := new(big.Int).Sub(amount, new(big.Int).Div(amount, big.NewInt(10)))
	return jittered.Add(jittered, offset)
}

// ObfuscateTiming returns a delay uniformly jittered into [base, 2*base).
func ObfuscateTiming(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}

	jitter, err := rand.Int(rand.Reader, big.NewInt(int64(base)))
	if err != nil {
		return base
	}

	return base + time.Duration(jitter.Int64())
}

func randomHash() common.Hash {
	var h common.Hash
	_, _ = rand.Read(h[:])
	return h
}
