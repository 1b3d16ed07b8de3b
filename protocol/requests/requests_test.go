package requests

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/status-im/status-names/crypto"
	statuserrors "github.com/status-im/status-names/errors"
)

const testAddress = "osmo1w508d6qejxtdg4y5r3zarvary0c5xw7kjxy2e2"

func TestValidName(t *testing.T) {
	for _, name := range []string{"a", "alice", "alice-2", "0x", "a1b2"} {
		require.True(t, ValidName(name), name)
	}
	for _, name := range []string{"", "-alice", "alice-", "Alice", "alice.osmo", "al ice", strings.Repeat("a", 64)} {
		require.False(t, ValidName(name), name)
	}
}

func TestClaim_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		req         Claim
		expectedErr string
	}{
		{
			name: "valid request",
			req: Claim{
				Name:             "alice",
				VerifyingMessage: "{}",
				Verifications: []Verification{{
					PublicKey: make([]byte, crypto.CompressedPubKeyLength),
					Signature: make([]byte, crypto.SignatureLength),
				}},
			},
		},
		{
			name: "admin claim without message",
			req:  Claim{Name: "alice"},
		},
		{
			name:        "invalid name",
			req:         Claim{Name: "Alice"},
			expectedErr: "Name",
		},
		{
			name: "uncompressed verifier key",
			req: Claim{
				Name: "alice",
				Verifications: []Verification{{
					PublicKey: make([]byte, crypto.UncompressedPubKeyLength),
					Signature: make([]byte, crypto.SignatureLength),
				}},
			},
			expectedErr: "PublicKey",
		},
		{
			name: "signature with recovery id",
			req: Claim{
				Name: "alice",
				Verifications: []Verification{{
					PublicKey: make([]byte, crypto.CompressedPubKeyLength),
					Signature: make([]byte, 65),
				}},
			},
			expectedErr: "Signature",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.expectedErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.expectedErr)
				require.Equal(t, statuserrors.ErrorCodeInvalidRequest, statuserrors.CodeOf(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSetRecord_Validate(t *testing.T) {
	req := SetRecord{Name: "alice", Prefix: "osmo", Address: testAddress}
	require.NoError(t, req.Validate())

	req.HashMethod = crypto.HashMethodEthereum
	require.NoError(t, req.Validate())

	req.HashMethod = "sha3"
	err := req.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "HashMethod")

	req = SetRecord{Name: "alice", Prefix: "osmo", Address: "osmo1invalid"}
	err = req.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Address")

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestSetRecord_ToProof(t *testing.T) {
	req := SetRecord{
		Name:       "alice",
		Prefix:     "osmo",
		Address:    testAddress,
		HashMethod: crypto.HashMethodCosmos,
		PubKey:     []byte{0x02},
		Signature:  []byte{0x03},
		Salt:       "salt",
	}
	proof := req.ToProof()
	require.Equal(t, "alice", proof.Name)
	require.Equal(t, "osmo", proof.Prefix)
	require.Equal(t, testAddress, proof.Signer)
	require.Equal(t, crypto.HashMethodCosmos, proof.HashMethod)
	require.Equal(t, []byte{0x02}, proof.PubKey)
	require.Equal(t, []byte{0x03}, proof.Signature)
	require.Equal(t, "salt", proof.Salt)
}

func TestRemoveRecordAndSetPrimary_Validate(t *testing.T) {
	require.NoError(t, (&RemoveRecord{Name: "alice", Address: testAddress}).Validate())
	require.NoError(t, (&RemoveRecord{Name: "alice", Address: testAddress, ReplacementPrimary: "bob"}).Validate())
	require.Error(t, (&RemoveRecord{Name: "alice", Address: testAddress, ReplacementPrimary: "Bob"}).Validate())
	require.Error(t, (&RemoveRecord{Name: "alice"}).Validate())

	require.NoError(t, (&SetPrimary{Name: "alice", Address: testAddress}).Validate())
	require.Error(t, (&SetPrimary{Name: "alice", Address: "alice"}).Validate())
}
