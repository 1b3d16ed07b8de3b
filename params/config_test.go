package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/status-im/status-names/protocol/records"
)

const (
	generatorCompressed = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	// public key of private key 2
	doubleGenerator = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
)

const validConfig = `{
	"DataDir": "/tmp/names",
	"DatabasePassword": "secret",
	"ChainID": "osmosis-1",
	"ContractAddress": "osmo1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqmcn030",
	"Verifiers": {
		"Keys": ["` + generatorCompressed + `", "0x` + doubleGenerator + `"],
		"Threshold": 50
	},
	"Admins": ["osmo1w508d6qejxtdg4y5r3zarvary0c5xw7kjxy2e2"],
	"PrimaryPolicy": "keep"
}`

func TestNewConfigFromJSON(t *testing.T) {
	config, err := NewConfigFromJSON(validConfig)
	require.NoError(t, err)
	require.Equal(t, "osmosis-1", config.ChainID)
	require.Equal(t, records.PrimaryKeepExisting, config.Policy())
	require.Equal(t, "localhost:8645", config.HTTPAddress())
	require.Equal(t, filepath.Join("/tmp/names", AppDatabaseFile), config.AppDatabasePath())

	set, err := config.VerifierSet()
	require.NoError(t, err)
	require.Equal(t, 2, set.Size())
	require.Equal(t, uint8(50), set.Threshold())

	require.NotContains(t, config.String(), "secret")
}

func TestConfigValidation(t *testing.T) {
	testCases := []struct {
		name        string
		config      string
		expectedErr string
	}{
		{
			name:        "missing data dir",
			config:      `{"DatabasePassword": "p", "ChainID": "c", "ContractAddress": "osmo1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqmcn030"}`,
			expectedErr: "DataDir",
		},
		{
			name:        "invalid contract address",
			config:      `{"DataDir": "d", "DatabasePassword": "p", "ChainID": "c", "ContractAddress": "osmo1nope"}`,
			expectedErr: "ContractAddress",
		},
		{
			name:        "threshold above 100",
			config:      `{"DataDir": "d", "DatabasePassword": "p", "ChainID": "c", "ContractAddress": "osmo1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqmcn030", "Verifiers": {"Threshold": 101}}`,
			expectedErr: "Threshold",
		},
		{
			name:        "duplicate verifier",
			config:      `{"DataDir": "d", "DatabasePassword": "p", "ChainID": "c", "ContractAddress": "osmo1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqmcn030", "Verifiers": {"Keys": ["` + generatorCompressed + `", "` + generatorCompressed + `"]}}`,
			expectedErr: "Verifiers",
		},
		{
			name:        "verifier not hex",
			config:      `{"DataDir": "d", "DatabasePassword": "p", "ChainID": "c", "ContractAddress": "osmo1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqmcn030", "Verifiers": {"Keys": ["zz"]}}`,
			expectedErr: "Verifiers",
		},
		{
			name:        "unknown policy",
			config:      `{"DataDir": "d", "DatabasePassword": "p", "ChainID": "c", "ContractAddress": "osmo1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqmcn030", "PrimaryPolicy": "first"}`,
			expectedErr: "PrimaryPolicy",
		},
		{
			name:        "unknown field",
			config:      `{"DataDir": "d", "NoDiscovery": true}`,
			expectedErr: "NoDiscovery",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfigFromJSON(tc.config)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0600))

	config, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"osmo1w508d6qejxtdg4y5r3zarvary0c5xw7kjxy2e2"}, config.Admins)

	_, err = LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestRateLimiter(t *testing.T) {
	config, err := NewConfigFromJSON(validConfig)
	require.NoError(t, err)
	require.Nil(t, config.RateLimiter())

	config.HTTPRateLimit = 2.5
	limiter := config.RateLimiter()
	require.NotNil(t, limiter)
	require.Equal(t, 1, limiter.Burst())

	config.HTTPRateBurst = 10
	require.Equal(t, 10, config.RateLimiter().Burst())
}
