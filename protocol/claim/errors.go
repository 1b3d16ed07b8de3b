package claim

import (
	"encoding/base64"
	"fmt"
	"math/big"

	statuserrors "github.com/status-im/status-names/errors"
)

var (
	ErrInvalidSignature = statuserrors.New(statuserrors.ErrorCodeInvalidSignature, "invalid signature")
	ErrNoVerifier       = statuserrors.New(statuserrors.ErrorCodeNoVerifier, "no verifier")
)

// ParseError is returned for a verifying message that is not valid JSON
// or lacks a field.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse verifying message: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Code implements errors.Coded.
func (e *ParseError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeParse
}

// VerifyingMessageMismatchError reports the first field of the verifying
// message that differs from the request context.
type VerifyingMessageMismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *VerifyingMessageMismatchError) Error() string {
	return fmt.Sprintf("verifying message mismatch: %s: expected %q, got %q", e.Field, e.Expected, e.Actual)
}

// Code implements errors.Coded.
func (e *VerifyingMessageMismatchError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeVerifyingMessageMismatch
}

// UnknownVerifierKeyError is returned for a verification signed by a key
// outside the verifier set.
type UnknownVerifierKeyError struct {
	PublicKey []byte
}

func (e *UnknownVerifierKeyError) Error() string {
	return fmt.Sprintf("unknown verifier key %s", base64.StdEncoding.EncodeToString(e.PublicKey))
}

// Code implements errors.Coded.
func (e *UnknownVerifierKeyError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeUnknownVerifierKey
}

// DuplicatedVerificationError is returned when two verifications carry the
// same signature bytes.
type DuplicatedVerificationError struct {
	Signature []byte
}

func (e *DuplicatedVerificationError) Error() string {
	return fmt.Sprintf("duplicated verification %s", base64.StdEncoding.EncodeToString(e.Signature))
}

// Code implements errors.Coded.
func (e *DuplicatedVerificationError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeDuplicatedVerification
}

// BelowThresholdError carries the required and the reached pass ratios.
type BelowThresholdError struct {
	Expected *big.Rat
	Actual   *big.Rat
}

func (e *BelowThresholdError) Error() string {
	return fmt.Sprintf("below threshold: expected %s, actual %s", FormatPercent(e.Expected), FormatPercent(e.Actual))
}

// Code implements errors.Coded.
func (e *BelowThresholdError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeBelowThreshold
}

// FormatPercent renders a ratio as a percentage, e.g. 1/4 as "25%".
func FormatPercent(r *big.Rat) string {
	if r == nil {
		return "<nil>"
	}
	p := new(big.Rat).Mul(r, big.NewRat(100, 1))
	if p.IsInt() {
		return p.Num().String() + "%"
	}
	return p.FloatString(2) + "%"
}
