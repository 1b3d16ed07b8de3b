package claim

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/status-im/status-names/crypto"
	statuserrors "github.com/status-im/status-names/errors"
	"github.com/status-im/status-names/protocol/guard"
)

const (
	testContract = "osmo1w508d6qejxtdg4y5r3zarvary0c5xw7kjxy2e2"
	testSender   = "osmo10e0525sfrf53yh2aljmm3sn9jq5njk7lvmlkkr"
	testChainID  = "osmosis-1"
)

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

type EngineSuite struct {
	suite.Suite

	keys   []*ecdsa.PrivateKey
	claims guard.ClaimGuard
	engine *Engine
	env    Env
}

func (s *EngineSuite) SetupTest() {
	s.keys = make([]*ecdsa.PrivateKey, 4)
	for i := range s.keys {
		key, err := ethcrypto.GenerateKey()
		s.Require().NoError(err)
		s.keys[i] = key
	}
	s.claims = guard.NewMemoryClaimGuard()
	s.engine = s.newEngine(50)
	s.env = Env{Sender: testSender, ContractAddress: testContract, ChainID: testChainID}
}

func (s *EngineSuite) newEngine(threshold uint8) *Engine {
	pubKeys := make([][]byte, len(s.keys))
	for i, key := range s.keys {
		pubKeys[i] = crypto.CompressPubKey(&key.PublicKey)
	}
	set, err := NewVerifierSet(pubKeys, threshold)
	s.Require().NoError(err)
	return NewEngine(set, s.claims, zap.NewNop())
}

func (s *EngineSuite) message(name, externalID string) string {
	raw, err := json.Marshal(VerifyingMessage{
		Name:             name,
		Claimer:          s.env.Sender,
		ContractAddress:  s.env.ContractAddress,
		ChainID:          s.env.ChainID,
		UniqueExternalID: externalID,
	})
	s.Require().NoError(err)
	return string(raw)
}

func (s *EngineSuite) sign(msg string, keys ...*ecdsa.PrivateKey) []Verification {
	hash := sha256.Sum256([]byte(msg))
	verifications := make([]Verification, 0, len(keys))
	for _, key := range keys {
		signature, err := crypto.Sign(hash[:], key)
		s.Require().NoError(err)
		verifications = append(verifications, Verification{
			PublicKey: crypto.CompressPubKey(&key.PublicKey),
			Signature: signature,
		})
	}
	return verifications
}

func (s *EngineSuite) TestFourVerifiersHalfThreshold() {
	a, b, c := s.keys[0], s.keys[1], s.keys[2]
	msg := s.message("alice", "twitter:1")

	_, err := s.engine.Claim(ApprovalThreshold, "alice", msg, s.sign(msg, a), s.env)
	var below *BelowThresholdError
	s.Require().True(errors.As(err, &below))
	s.Require().Equal("below threshold: expected 50%, actual 25%", err.Error())
	s.Require().Equal(0, below.Actual.Cmp(big.NewRat(1, 4)))

	instruction, err := s.engine.Claim(ApprovalThreshold, "alice", msg, s.sign(msg, a, b), s.env)
	s.Require().NoError(err)
	s.Require().Equal("alice", instruction.Name)
	s.Require().Equal(testSender, instruction.Owner)
	s.Require().Equal("twitter:1", instruction.Metadata.ExternalID)
	s.Require().Equal(2, instruction.Metadata.Verifications)
	s.Require().False(instruction.Metadata.AdminClaim)

	// the same message cannot be used twice
	_, err = s.engine.Claim(ApprovalThreshold, "alice", msg, s.sign(msg, a, b, c), s.env)
	var duplicate *guard.DuplicateExternalIDError
	s.Require().True(errors.As(err, &duplicate))
	s.Require().Equal("alice", duplicate.Name)
}

func (s *EngineSuite) TestUnknownVerifierKey() {
	outsider, err := ethcrypto.GenerateKey()
	s.Require().NoError(err)
	msg := s.message("bob", "twitter:2")

	_, err = s.engine.Claim(ApprovalThreshold, "bob", msg, s.sign(msg, s.keys[0], outsider), s.env)
	var unknown *UnknownVerifierKeyError
	s.Require().True(errors.As(err, &unknown))
	s.Require().Equal(crypto.CompressPubKey(&outsider.PublicKey), unknown.PublicKey)
	s.Require().Equal(statuserrors.ErrorCodeUnknownVerifierKey, statuserrors.CodeOf(err))
}

func (s *EngineSuite) TestDuplicateRejectedBeforeCrypto() {
	msg := s.message("carol", "twitter:3")
	garbage := make([]byte, crypto.SignatureLength)
	verifications := []Verification{
		{PublicKey: crypto.CompressPubKey(&s.keys[0].PublicKey), Signature: garbage},
		{PublicKey: crypto.CompressPubKey(&s.keys[1].PublicKey), Signature: garbage},
	}

	_, err := s.engine.Claim(ApprovalThreshold, "carol", msg, verifications, s.env)
	var duplicated *DuplicatedVerificationError
	s.Require().True(errors.As(err, &duplicated))

	_, err = s.engine.Claim(ApprovalThreshold, "carol", msg, verifications[:1], s.env)
	s.Require().Equal(ErrInvalidSignature, err)

	// the same key handing in the same bytes twice
	sameKey := []Verification{verifications[0], verifications[0]}
	_, err = s.engine.Claim(ApprovalThreshold, "carol", msg, sameKey, s.env)
	s.Require().True(errors.As(err, &duplicated))

	valid := s.sign(msg, s.keys[0])
	_, err = s.engine.Claim(ApprovalThreshold, "carol", msg, []Verification{valid[0], valid[0]}, s.env)
	s.Require().True(errors.As(err, &duplicated))
}

func (s *EngineSuite) TestSignatureOverOtherMessage() {
	msg := s.message("dave", "twitter:4")
	other := s.message("dave", "twitter:5")

	_, err := s.engine.Claim(ApprovalThreshold, "dave", msg, s.sign(other, s.keys[0], s.keys[1]), s.env)
	s.Require().Equal(ErrInvalidSignature, err)

	_, ok, err := s.claims.ClaimedName("twitter:4")
	s.Require().NoError(err)
	s.Require().False(ok)
}

func (s *EngineSuite) TestMismatchOrder() {
	raw, err := json.Marshal(VerifyingMessage{
		Name:             "mallory",
		Claimer:          "osmo1someoneelse",
		ContractAddress:  "osmo1othercontract",
		ChainID:          "juno-1",
		UniqueExternalID: "twitter:6",
	})
	s.Require().NoError(err)

	_, err = s.engine.Claim(ApprovalThreshold, "erin", string(raw), nil, s.env)
	var mismatch *VerifyingMessageMismatchError
	s.Require().True(errors.As(err, &mismatch))
	s.Require().Equal("name", mismatch.Field)
	s.Require().Equal("erin", mismatch.Expected)
	s.Require().Equal("mallory", mismatch.Actual)

	_, err = s.engine.Claim(ApprovalThreshold, "mallory", string(raw), nil, s.env)
	s.Require().True(errors.As(err, &mismatch))
	s.Require().Equal("claimer", mismatch.Field)

	env := s.env
	env.Sender = "osmo1someoneelse"
	_, err = s.engine.Claim(ApprovalThreshold, "mallory", string(raw), nil, env)
	s.Require().True(errors.As(err, &mismatch))
	s.Require().Equal("contract_address", mismatch.Field)

	env.ContractAddress = "osmo1othercontract"
	_, err = s.engine.Claim(ApprovalThreshold, "mallory", string(raw), nil, env)
	s.Require().True(errors.As(err, &mismatch))
	s.Require().Equal("chain_id", mismatch.Field)
	s.Require().Equal(testChainID, mismatch.Expected)
}

func (s *EngineSuite) TestParseErrors() {
	for _, raw := range []string{
		"",
		"not json",
		`{"name":"frank"}`,
		`{"name":"frank","claimer":"a","contract_address":"b","chain_id":"c","unique_external_id":"d","extra":1}`,
		`{"name":"frank","claimer":"a","contract_address":"b","chain_id":"c","unique_external_id":"d"}}garbage`,
		`{"name":"frank","claimer":"a","contract_address":"b","chain_id":"c","unique_external_id":"d"} {}`,
	} {
		_, err := s.engine.Claim(ApprovalThreshold, "frank", raw, nil, s.env)
		var parseErr *ParseError
		s.Require().True(errors.As(err, &parseErr), raw)
	}
}

func TestParseVerifyingMessageTrailingWhitespace(t *testing.T) {
	msg, err := ParseVerifyingMessage(`{"name":"frank","claimer":"a","contract_address":"b","chain_id":"c","unique_external_id":"d"}` + "\n ")
	require.NoError(t, err)
	require.Equal(t, "d", msg.UniqueExternalID)

	_, err = ParseVerifyingMessage(`{"name":"frank","claimer":"a","contract_address":"b","chain_id":"c","unique_external_id":"d"}}`)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

func (s *EngineSuite) TestNoVerifier() {
	set, err := NewVerifierSet(nil, 0)
	s.Require().NoError(err)
	engine := NewEngine(set, s.claims, zap.NewNop())
	msg := s.message("grace", "twitter:7")

	_, err = engine.Claim(ApprovalThreshold, "grace", msg, nil, s.env)
	s.Require().Equal(ErrNoVerifier, err)
}

func (s *EngineSuite) TestThresholdMonotonicity() {
	for _, threshold := range []uint8{0, 25, 50, 51, 75, 100} {
		engine := s.newEngine(threshold)
		for n := 0; n <= len(s.keys); n++ {
			name := fmt.Sprintf("mono%d", n)
			msg := s.message(name, fmt.Sprintf("mono:%d:%d", threshold, n))

			_, err := engine.Claim(ApprovalThreshold, name, msg, s.sign(msg, s.keys[:n]...), s.env)
			if n*100 >= int(threshold)*len(s.keys) {
				s.Require().NoError(err, "threshold %d, %d signatures", threshold, n)
			} else {
				var below *BelowThresholdError
				s.Require().True(errors.As(err, &below), "threshold %d, %d signatures", threshold, n)
			}
		}
	}
}

func (s *EngineSuite) TestAdminClaim() {
	instruction, err := s.engine.Claim(ApprovalAdmin, "root", "", nil, s.env)
	s.Require().NoError(err)
	s.Require().True(instruction.Metadata.AdminClaim)
	s.Require().Empty(instruction.Metadata.ExternalID)

	// admins skip matching but still consume the external id
	msg := s.message("other", "github:1")
	instruction, err = s.engine.Claim(ApprovalAdmin, "root2", msg, nil, s.env)
	s.Require().NoError(err)
	s.Require().Equal("github:1", instruction.Metadata.ExternalID)

	_, err = s.engine.Claim(ApprovalAdmin, "root3", msg, nil, s.env)
	var duplicate *guard.DuplicateExternalIDError
	s.Require().True(errors.As(err, &duplicate))
	s.Require().Equal("root2", duplicate.Name)
}

func TestNewVerifierSet(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	compressed := crypto.CompressPubKey(&key.PublicKey)

	set, err := NewVerifierSet([][]byte{compressed}, 100)
	require.NoError(t, err)
	require.True(t, set.Contains(compressed))
	require.Equal(t, 1, set.Size())
	require.Equal(t, uint8(100), set.Threshold())

	_, err = NewVerifierSet([][]byte{compressed}, 101)
	require.Equal(t, ErrInvalidThreshold, err)

	_, err = NewVerifierSet([][]byte{compressed, compressed}, 50)
	require.True(t, errors.Is(err, ErrDuplicateVerifierKey))

	_, err = NewVerifierSet([][]byte{crypto.UncompressedPubKey(&key.PublicKey)}, 50)
	require.True(t, errors.Is(err, crypto.ErrInvalidPublicKey))

	keys := set.Keys()
	keys[0][0] ^= 0xff
	require.True(t, set.Contains(compressed))
}

func TestFormatPercent(t *testing.T) {
	require.Equal(t, "25%", FormatPercent(big.NewRat(1, 4)))
	require.Equal(t, "33.33%", FormatPercent(big.NewRat(1, 3)))
	require.Equal(t, "0%", FormatPercent(big.NewRat(0, 1)))
}
