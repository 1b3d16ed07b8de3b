// Package claim decides whether a name may be minted, either on an admin's
// word or on a quorum of verifier signatures over a verifying message.
package claim

import (
	"crypto/sha256"
	"fmt"

	mapset "github.com/deckarep/golang-set"
	"go.uber.org/zap"

	"github.com/status-im/status-names/crypto"
	"github.com/status-im/status-names/protocol/guard"
)

// Approval is how a claim is approved.
type Approval int

const (
	// ApprovalThreshold claims need verifier signatures.
	ApprovalThreshold Approval = iota
	// ApprovalAdmin claims are approved by the caller's admin status alone.
	ApprovalAdmin
)

func (a Approval) String() string {
	switch a {
	case ApprovalThreshold:
		return "threshold"
	case ApprovalAdmin:
		return "admin"
	}
	return fmt.Sprintf("approval(%d)", int(a))
}

// Approve picks the approval path from the caller's admin status.
func Approve(isAdmin bool) Approval {
	if isAdmin {
		return ApprovalAdmin
	}
	return ApprovalThreshold
}

// Env is the context a claim is executed in.
type Env struct {
	Sender          string
	ContractAddress string
	ChainID         string
}

// Verification is one verifier's signature over the verifying message.
type Verification struct {
	PublicKey []byte `json:"publicKey"`
	Signature []byte `json:"signature"`
}

// Metadata is attached to a minted name.
type Metadata struct {
	ExternalID    string `json:"externalId,omitempty"`
	Verifications int    `json:"verifications"`
	AdminClaim    bool   `json:"adminClaim,omitempty"`
}

// MintInstruction is handed to the token layer once a claim is accepted.
type MintInstruction struct {
	Name     string   `json:"name"`
	Owner    string   `json:"owner"`
	Metadata Metadata `json:"metadata"`
}

type Engine struct {
	verifiers *VerifierSet
	claims    guard.ClaimGuard
	logger    *zap.Logger
}

func NewEngine(verifiers *VerifierSet, claims guard.ClaimGuard, logger *zap.Logger) *Engine {
	return &Engine{
		verifiers: verifiers,
		claims:    claims,
		logger:    logger.Named("claim"),
	}
}

// Claim runs the claim checks and, on success, registers the external id
// and returns the mint instruction. Checks run in a fixed order and the
// first failure is returned.
func (e *Engine) Claim(approval Approval, name, verifyingMsg string, verifications []Verification, env Env) (*MintInstruction, error) {
	var (
		msg   *VerifyingMessage
		valid int
		err   error
	)

	switch approval {
	case ApprovalAdmin:
		if verifyingMsg != "" {
			msg, err = ParseVerifyingMessage(verifyingMsg)
			if err != nil {
				return nil, err
			}
		}
	case ApprovalThreshold:
		msg, valid, err = e.verify(name, verifyingMsg, verifications, env)
		if err != nil {
			e.logger.Debug("claim rejected", zap.String("name", name), zap.Error(err))
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown approval %s", approval)
	}

	instruction := &MintInstruction{
		Name:  name,
		Owner: env.Sender,
		Metadata: Metadata{
			Verifications: valid,
			AdminClaim:    approval == ApprovalAdmin,
		},
	}
	if msg != nil {
		if err := e.claims.Register(msg.UniqueExternalID, name); err != nil {
			return nil, err
		}
		instruction.Metadata.ExternalID = msg.UniqueExternalID
	}

	e.logger.Debug("claim approved",
		zap.String("name", name),
		zap.String("owner", env.Sender),
		zap.Stringer("approval", approval),
		zap.Int("verifications", valid))
	return instruction, nil
}

// verify implements the threshold path and returns the number of distinct
// verifiers whose signature is valid.
func (e *Engine) verify(name, verifyingMsg string, verifications []Verification, env Env) (*VerifyingMessage, int, error) {
	msg, err := ParseVerifyingMessage(verifyingMsg)
	if err != nil {
		return nil, 0, err
	}

	if err := msg.Match(name, env); err != nil {
		return nil, 0, err
	}

	claimed, ok, err := e.claims.ClaimedName(msg.UniqueExternalID)
	if err != nil {
		return nil, 0, err
	}
	if ok {
		return nil, 0, &guard.DuplicateExternalIDError{ExternalID: msg.UniqueExternalID, Name: claimed}
	}

	for _, v := range verifications {
		if !e.verifiers.Contains(v.PublicKey) {
			return nil, 0, &UnknownVerifierKeyError{PublicKey: v.PublicKey}
		}
	}

	// Signature bytes are deduplicated before any cryptography runs.
	seen := mapset.NewThreadUnsafeSet()
	for _, v := range verifications {
		if !seen.Add(string(v.Signature)) {
			return nil, 0, &DuplicatedVerificationError{Signature: v.Signature}
		}
	}

	hash := sha256.Sum256([]byte(verifyingMsg))
	signers := mapset.NewThreadUnsafeSet()
	for _, v := range verifications {
		if err := crypto.VerifySignature(v.PublicKey, hash[:], v.Signature); err != nil {
			return nil, 0, ErrInvalidSignature
		}
		signers.Add(string(v.PublicKey))
	}

	if err := e.verifiers.CheckThreshold(signers.Cardinality()); err != nil {
		return nil, 0, err
	}
	return msg, signers.Cardinality(), nil
}
