package crypto

import (
	"crypto/ecdsa"
	"errors"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// CompressedPubKeyLength is the length of a SEC-1 compressed secp256k1 key.
	CompressedPubKeyLength = 33
	// UncompressedPubKeyLength is the length of a SEC-1 uncompressed secp256k1 key.
	UncompressedPubKeyLength = 65
	// SignatureLength is the length of a raw r||s signature.
	SignatureLength = 64
	// HashLength is the length of the digest a signature is made over.
	HashLength = 32
)

var (
	ErrInvalidPublicKey       = errors.New("invalid public key")
	ErrInvalidSignatureLength = errors.New("invalid signature length")
	ErrInvalidHashLength      = errors.New("invalid hash length")
	ErrSignatureMismatch      = errors.New("signature mismatch")
)

// ValidatePublicKey checks pubKey is a compressed or uncompressed secp256k1 point.
func ValidatePublicKey(pubKey []byte) error {
	switch len(pubKey) {
	case CompressedPubKeyLength:
		if _, err := crypto.DecompressPubkey(pubKey); err != nil {
			return ErrInvalidPublicKey
		}
	case UncompressedPubKeyLength:
		if _, err := crypto.UnmarshalPubkey(pubKey); err != nil {
			return ErrInvalidPublicKey
		}
	default:
		return ErrInvalidPublicKey
	}
	return nil
}

// VerifySignature checks that signature is a valid r||s signature of hash
// made by the owner of pubKey. Malleable (high S) signatures are rejected.
func VerifySignature(pubKey, hash, signature []byte) error {
	if err := ValidatePublicKey(pubKey); err != nil {
		return err
	}
	if len(hash) != HashLength {
		return ErrInvalidHashLength
	}
	if len(signature) != SignatureLength {
		return ErrInvalidSignatureLength
	}
	if !crypto.VerifySignature(pubKey, hash, signature) {
		return ErrSignatureMismatch
	}
	return nil
}

// Sign signs hash and returns the signature in r||s form, without the
// recovery id.
func Sign(hash []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	if len(hash) != HashLength {
		return nil, ErrInvalidHashLength
	}
	signature, err := crypto.Sign(hash, key)
	if err != nil {
		return nil, err
	}
	return signature[:SignatureLength], nil
}

// CompressPubKey returns the 33 bytes form of key.
func CompressPubKey(key *ecdsa.PublicKey) []byte {
	return crypto.CompressPubkey(key)
}

// UncompressedPubKey returns the 65 bytes form of key.
func UncompressedPubKey(key *ecdsa.PublicKey) []byte {
	return crypto.FromECDSAPub(key)
}
