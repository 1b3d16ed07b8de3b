// Package adr36 checks that the owner of a name controls the address it
// binds, through an ADR-36 signed message unless a bypass applies.
package adr36

import (
	"bytes"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/status-im/status-names/bech32"
	"github.com/status-im/status-names/crypto"
	statuserrors "github.com/status-im/status-names/errors"
	"github.com/status-im/status-names/protocol/access"
	"github.com/status-im/status-names/protocol/guard"
)

// ErrSignatureMismatch is returned when the key does not match the signer
// or the signature does not verify.
var ErrSignatureMismatch = statuserrors.New(statuserrors.ErrorCodeSignatureMismatch, "signature mismatch")

type InvalidPubKeyError struct {
	HashMethod crypto.HashMethod
	Length     int
}

func (e *InvalidPubKeyError) Error() string {
	return fmt.Sprintf("invalid pub key: %d bytes for hash method %q", e.Length, e.HashMethod)
}

// Code implements errors.Coded.
func (e *InvalidPubKeyError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeInvalidPubKey
}

type Bech32PrefixMismatchError struct {
	Expected string
	Actual   string
}

func (e *Bech32PrefixMismatchError) Error() string {
	return fmt.Sprintf("bech32 prefix mismatch: expected %q, got %q", e.Expected, e.Actual)
}

// Code implements errors.Coded.
func (e *Bech32PrefixMismatchError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeBech32PrefixMismatch
}

// Mode tells how an address binding was authenticated.
type Mode int

const (
	// ModeAdmin bindings are trusted on the caller's admin status.
	ModeAdmin Mode = iota + 1
	// ModeSelfProof bindings target the sender's own account.
	ModeSelfProof
	// ModeFullProof bindings carry a verified signature.
	ModeFullProof
)

func (m Mode) String() string {
	switch m {
	case ModeAdmin:
		return "admin"
	case ModeSelfProof:
		return "self"
	case ModeFullProof:
		return "full"
	}
	return "unknown"
}

// Proof is what a signer hands to the name owner to bind its address.
type Proof struct {
	Name       string
	Prefix     string
	Signer     string
	HashMethod crypto.HashMethod
	PubKey     []byte
	Signature  []byte
	Salt       string
}

// Env is the context a binding is executed in.
type Env struct {
	Sender          string
	ContractAddress string
	ChainID         string
}

// Decide picks the verification mode. Admins need no proof, and a sender
// binding an address with its own payload under any prefix has already
// authenticated by signing the request.
func Decide(role access.Role, sender, signer string) (Mode, error) {
	if role == access.RoleAdmin {
		return ModeAdmin, nil
	}
	_, signerPayload, err := bech32.Decode(signer)
	if err != nil {
		return 0, err
	}
	// a sender that is not an address cannot be the signer
	_, senderPayload, err := bech32.Decode(sender)
	if err == nil && bytes.Equal(senderPayload, signerPayload) {
		return ModeSelfProof, nil
	}
	return ModeFullProof, nil
}

type Verifier struct {
	signatures guard.SignatureGuard
	logger     *zap.Logger
}

func NewVerifier(signatures guard.SignatureGuard, logger *zap.Logger) *Verifier {
	return &Verifier{
		signatures: signatures,
		logger:     logger.Named("adr36"),
	}
}

// Verify authenticates proof for a caller acting with role and returns
// the mode that applied. Only full proofs consume their signature.
func (v *Verifier) Verify(role access.Role, proof Proof, env Env) (Mode, error) {
	mode, err := Decide(role, env.Sender, proof.Signer)
	if err != nil {
		return 0, err
	}
	if mode == ModeFullProof {
		if err := v.verifyProof(proof, env); err != nil {
			v.logger.Debug("proof rejected",
				zap.String("name", proof.Name),
				zap.String("signer", proof.Signer),
				zap.Error(err))
			return 0, err
		}
	}
	v.logger.Debug("proof accepted",
		zap.String("name", proof.Name),
		zap.String("signer", proof.Signer),
		zap.Stringer("mode", mode))
	return mode, nil
}

func (v *Verifier) verifyProof(proof Proof, env Env) error {
	expected, err := proof.HashMethod.PubKeyLength()
	if err != nil || len(proof.PubKey) != expected {
		return &InvalidPubKeyError{HashMethod: proof.HashMethod, Length: len(proof.PubKey)}
	}

	signerPrefix, err := bech32.Prefix(proof.Signer)
	if err != nil {
		return err
	}
	derived, err := crypto.DeriveAddress(proof.HashMethod, proof.PubKey, signerPrefix)
	if err != nil {
		return &InvalidPubKeyError{HashMethod: proof.HashMethod, Length: len(proof.PubKey)}
	}
	if !strings.EqualFold(derived, proof.Signer) {
		return ErrSignatureMismatch
	}

	if !strings.EqualFold(signerPrefix, proof.Prefix) {
		return &Bech32PrefixMismatchError{Expected: proof.Prefix, Actual: signerPrefix}
	}

	if err := crypto.VerifySignature(proof.PubKey, Digest(proof, env), proof.Signature); err != nil {
		return ErrSignatureMismatch
	}

	return v.signatures.Consume(proof.Signature)
}
