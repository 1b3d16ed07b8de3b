// Package bech32 converts chain-prefixed human readable addresses to and
// from their raw payload bytes.
package bech32

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/bech32"

	statuserrors "github.com/status-im/status-names/errors"
)

// DecodingError is returned for any address that is not valid bech32.
type DecodingError struct {
	Address string
	Err     error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding error: %q: %v", e.Address, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// Code implements errors.Coded.
func (e *DecodingError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeDecoding
}

// Decode splits address into its human readable prefix and payload.
func Decode(address string) (string, []byte, error) {
	prefix, data, err := bech32.Decode(address)
	if err != nil {
		return "", nil, &DecodingError{Address: address, Err: err}
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, &DecodingError{Address: address, Err: err}
	}
	return prefix, payload, nil
}

// Encode builds an address from prefix and payload.
func Encode(prefix string, payload []byte) (string, error) {
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(prefix, data)
}

// Normalize returns the canonical lowercase form of address. Valid bech32
// is either all lowercase or all uppercase, so both spellings name the
// same address.
func Normalize(address string) (string, error) {
	if _, _, err := Decode(address); err != nil {
		return "", err
	}
	return strings.ToLower(address), nil
}

// Prefix returns the human readable part of address.
func Prefix(address string) (string, error) {
	prefix, _, err := Decode(address)
	return prefix, err
}

// SamePayload reports whether a and b encode the same bytes, regardless of
// their prefixes.
func SamePayload(a, b string) (bool, error) {
	_, payloadA, err := Decode(a)
	if err != nil {
		return false, err
	}
	_, payloadB, err := Decode(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(payloadA, payloadB), nil
}
