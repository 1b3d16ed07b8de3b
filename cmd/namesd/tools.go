package main

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/status-im/status-names/crypto"
	"github.com/status-im/status-names/protocol/adr36"
	"github.com/status-im/status-names/protocol/requests"
)

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func parseKey(s string) (*ecdsa.PrivateKey, error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return key, nil
}

func pubKeyFor(method crypto.HashMethod, key *ecdsa.PrivateKey) []byte {
	if method == crypto.HashMethodEthereum {
		return crypto.UncompressedPubKey(&key.PublicKey)
	}
	return crypto.CompressPubKey(&key.PublicKey)
}

func deriveAddress(pubKeyHex, prefix string, method crypto.HashMethod) (string, error) {
	pubKey, err := decodeHex(pubKeyHex)
	if err != nil {
		return "", errors.Wrap(err, "invalid public key")
	}
	return crypto.DeriveAddress(method, pubKey, prefix)
}

// signMessage signs the SHA-256 of message and returns the base64 r||s
// signature with the hex compressed key that verifies it.
func signMessage(keyHex, message string) (signature string, pubKey string, err error) {
	key, err := parseKey(keyHex)
	if err != nil {
		return "", "", err
	}
	hash := sha256.Sum256([]byte(message))
	sig, err := crypto.Sign(hash[:], key)
	if err != nil {
		return "", "", err
	}
	return base64.StdEncoding.EncodeToString(sig), hex.EncodeToString(crypto.CompressPubKey(&key.PublicKey)), nil
}

// buildSetRecord returns a SetRecord request carrying a full proof signed by key.
func buildSetRecord(key *ecdsa.PrivateKey, method crypto.HashMethod, name, prefix, salt string, env adr36.Env) (*requests.SetRecord, error) {
	pubKey := pubKeyFor(method, key)
	signer, err := crypto.DeriveAddress(method, pubKey, prefix)
	if err != nil {
		return nil, err
	}
	if salt == "" {
		salt = uuid.New().String()
	}
	proof := adr36.Proof{
		Name:       name,
		Prefix:     prefix,
		Signer:     signer,
		HashMethod: method,
		PubKey:     pubKey,
		Salt:       salt,
	}
	signature, err := crypto.Sign(adr36.Digest(proof, env), key)
	if err != nil {
		return nil, err
	}
	return &requests.SetRecord{
		Name:       name,
		Prefix:     prefix,
		Address:    signer,
		HashMethod: method,
		PubKey:     pubKey,
		Signature:  signature,
		Salt:       salt,
	}, nil
}

func derive(cCtx *cli.Context) error {
	address, err := deriveAddress(cCtx.String(PubKeyFlag), cCtx.String(PrefixFlag), crypto.HashMethod(cCtx.String(MethodFlag)))
	if err != nil {
		return err
	}
	fmt.Println(address)
	return nil
}

func sign(cCtx *cli.Context) error {
	signature, pubKey, err := signMessage(cCtx.String(KeyFlag), cCtx.String(MessageFlag))
	if err != nil {
		return err
	}
	return printJSON(map[string]string{
		"publicKey": pubKey,
		"signature": signature,
	})
}

func prove(cCtx *cli.Context) error {
	key, err := parseKey(cCtx.String(KeyFlag))
	if err != nil {
		return err
	}
	request, err := buildSetRecord(
		key,
		crypto.HashMethod(cCtx.String(MethodFlag)),
		cCtx.String(NameFlag),
		cCtx.String(PrefixFlag),
		cCtx.String(SaltFlag),
		adr36.Env{
			Sender:          cCtx.String(SenderFlag),
			ChainID:         cCtx.String(ChainIDFlag),
			ContractAddress: cCtx.String(ContractFlag),
		},
	)
	if err != nil {
		return err
	}
	if err := request.Validate(); err != nil {
		return err
	}
	return printJSON(request)
}
