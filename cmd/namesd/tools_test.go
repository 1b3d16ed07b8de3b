package main

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/status-im/status-names/crypto"
	"github.com/status-im/status-names/protocol/access"
	"github.com/status-im/status-names/protocol/adr36"
	"github.com/status-im/status-names/protocol/guard"
)

// private key 1, whose public key is the secp256k1 generator
const oneKey = "0000000000000000000000000000000000000000000000000000000000000001"

func TestDeriveAddress(t *testing.T) {
	address, err := deriveAddress("0x0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", "osmo", crypto.HashMethodCosmos)
	require.NoError(t, err)
	require.Equal(t, "osmo1w508d6qejxtdg4y5r3zarvary0c5xw7kjxy2e2", address)

	_, err = deriveAddress("zz", "osmo", crypto.HashMethodCosmos)
	require.Error(t, err)
}

func TestSignMessage(t *testing.T) {
	signature, pubKey, err := signMessage(oneKey, `{"name":"alice"}`)
	require.NoError(t, err)
	require.Equal(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", pubKey)

	raw, err := base64.StdEncoding.DecodeString(signature)
	require.NoError(t, err)
	require.Len(t, raw, crypto.SignatureLength)

	_, _, err = signMessage("not a key", "message")
	require.Error(t, err)
}

func TestBuildSetRecordVerifies(t *testing.T) {
	key, err := parseKey(oneKey)
	require.NoError(t, err)
	env := adr36.Env{
		Sender:          "osmo1qyqszqgpqyqszqgpqyqszqgpqyqszqgp6gjwmw",
		ContractAddress: "osmo1qgpqyqszqgpqyqszqgpqyqszqgpqyqsztv5tsc",
		ChainID:         "osmosis-1",
	}

	for _, method := range []crypto.HashMethod{crypto.HashMethodCosmos, crypto.HashMethodEthereum} {
		t.Run(string(method), func(t *testing.T) {
			request, err := buildSetRecord(key, method, "alice", "juno", "", env)
			require.NoError(t, err)
			require.NoError(t, request.Validate())
			require.NotEmpty(t, request.Salt)

			verifier := adr36.NewVerifier(guard.NewMemorySignatureGuard(), zap.NewNop())
			mode, err := verifier.Verify(access.RoleOwner, request.ToProof(), env)
			require.NoError(t, err)
			require.Equal(t, adr36.ModeFullProof, mode)
		})
	}

	request, err := buildSetRecord(key, crypto.HashMethodCosmos, "alice", "juno", "fixed", env)
	require.NoError(t, err)
	require.Equal(t, "juno1w508d6qejxtdg4y5r3zarvary0c5xw7kv05pgy", request.Address)
	require.Equal(t, "fixed", request.Salt)
	require.Equal(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", hex.EncodeToString(request.PubKey))
}
