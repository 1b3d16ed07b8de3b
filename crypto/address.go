package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160" // nolint: staticcheck

	"github.com/status-im/status-names/bech32"
)

// HashMethod selects how an address is derived from a public key.
type HashMethod string

const (
	// HashMethodCosmos derives RIPEMD-160(SHA-256(compressed key)).
	HashMethodCosmos HashMethod = "cosmos"
	// HashMethodEthereum derives the last 20 bytes of Keccak-256(uncompressed key).
	HashMethodEthereum HashMethod = "ethereum"
)

// PubKeyLength returns the key length a hash method expects.
func (m HashMethod) PubKeyLength() (int, error) {
	switch m {
	case HashMethodCosmos:
		return CompressedPubKeyLength, nil
	case HashMethodEthereum:
		return UncompressedPubKeyLength, nil
	}
	return 0, fmt.Errorf("unknown hash method %q", m)
}

// DeriveCosmosAddress returns the bech32 address of a compressed key.
func DeriveCosmosAddress(pubKey []byte, prefix string) (string, error) {
	if len(pubKey) != CompressedPubKeyLength {
		return "", ErrInvalidPublicKey
	}
	sha := sha256.Sum256(pubKey)
	hasher := ripemd160.New()
	hasher.Write(sha[:]) // nolint: errcheck
	return bech32.Encode(prefix, hasher.Sum(nil))
}

// DeriveEthereumAddress returns the bech32 address of an uncompressed key,
// using the same 20 bytes an Ethereum wallet shows as its hex address.
func DeriveEthereumAddress(pubKey []byte, prefix string) (string, error) {
	if len(pubKey) != UncompressedPubKeyLength {
		return "", ErrInvalidPublicKey
	}
	key, err := crypto.UnmarshalPubkey(pubKey)
	if err != nil {
		return "", ErrInvalidPublicKey
	}
	address := crypto.PubkeyToAddress(*key)
	return bech32.Encode(prefix, address.Bytes())
}

// DeriveAddress dispatches on method.
func DeriveAddress(method HashMethod, pubKey []byte, prefix string) (string, error) {
	switch method {
	case HashMethodCosmos:
		return DeriveCosmosAddress(pubKey, prefix)
	case HashMethodEthereum:
		return DeriveEthereumAddress(pubKey, prefix)
	}
	return "", fmt.Errorf("unknown hash method %q", method)
}
