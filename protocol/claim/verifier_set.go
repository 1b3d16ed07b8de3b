package claim

import (
	"errors"
	"fmt"
	"math/big"

	mapset "github.com/deckarep/golang-set"

	"github.com/status-im/status-names/crypto"
)

// MaxThreshold is a threshold requiring every verifier.
const MaxThreshold = 100

var (
	ErrInvalidThreshold     = errors.New("threshold must be between 0 and 100")
	ErrDuplicateVerifierKey = errors.New("duplicate verifier key")
)

// VerifierSet is the ordered list of trusted verifier keys and the
// percentage of them that must approve a claim.
type VerifierSet struct {
	keys      [][]byte
	index     mapset.Set
	threshold uint8
}

// NewVerifierSet validates keys (distinct, 33 bytes compressed secp256k1)
// and threshold (a percentage).
func NewVerifierSet(keys [][]byte, threshold uint8) (*VerifierSet, error) {
	if threshold > MaxThreshold {
		return nil, ErrInvalidThreshold
	}

	set := &VerifierSet{
		keys:      make([][]byte, 0, len(keys)),
		index:     mapset.NewThreadUnsafeSet(),
		threshold: threshold,
	}
	for i, key := range keys {
		if len(key) != crypto.CompressedPubKeyLength {
			return nil, fmt.Errorf("verifier key %d: %w", i, crypto.ErrInvalidPublicKey)
		}
		if err := crypto.ValidatePublicKey(key); err != nil {
			return nil, fmt.Errorf("verifier key %d: %w", i, err)
		}
		if !set.index.Add(string(key)) {
			return nil, fmt.Errorf("verifier key %d: %w", i, ErrDuplicateVerifierKey)
		}
		set.keys = append(set.keys, append([]byte(nil), key...))
	}
	return set, nil
}

// Contains reports whether key belongs to the set.
func (s *VerifierSet) Contains(key []byte) bool {
	return s.index.Contains(string(key))
}

// Size is the number of verifiers.
func (s *VerifierSet) Size() int {
	return len(s.keys)
}

// Threshold is the required approval percentage.
func (s *VerifierSet) Threshold() uint8 {
	return s.threshold
}

// Keys returns a copy of the verifier keys in configuration order.
func (s *VerifierSet) Keys() [][]byte {
	keys := make([][]byte, len(s.keys))
	for i, key := range s.keys {
		keys[i] = append([]byte(nil), key...)
	}
	return keys
}

// CheckThreshold compares approvals/|set| with the threshold as exact
// rationals.
func (s *VerifierSet) CheckThreshold(approvals int) error {
	if len(s.keys) == 0 {
		return ErrNoVerifier
	}
	expected := big.NewRat(int64(s.threshold), MaxThreshold)
	actual := big.NewRat(int64(approvals), int64(len(s.keys)))
	if actual.Cmp(expected) < 0 {
		return &BelowThresholdError{Expected: expected, Actual: actual}
	}
	return nil
}
