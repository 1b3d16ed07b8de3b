package params

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/time/rate"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/status-im/status-names/bech32"
	"github.com/status-im/status-names/logutils"
	"github.com/status-im/status-names/protocol/claim"
	"github.com/status-im/status-names/protocol/records"
	"github.com/status-im/status-names/sqlite"
)

const (
	// AppDatabaseFile holds records and replay guards.
	AppDatabaseFile = "names.sql"
	// RegistryDatabaseFile holds the local name registry.
	RegistryDatabaseFile = "registry.sql"
)

// VerifiersConfig lists the verifier keys a claim is checked against.
type VerifiersConfig struct {
	// Keys are hex encoded compressed secp256k1 public keys.
	Keys []string `json:"Keys"`

	// Threshold is the percentage of Keys that must sign a claim.
	Threshold uint8 `json:"Threshold" validate:"max=100"`
}

// Config is the configuration of a names node.
type Config struct {
	// DataDir is the directory the databases are stored in.
	DataDir string `json:"DataDir" validate:"required"`

	// DatabasePassword encrypts the sqlcipher databases.
	DatabasePassword string `json:"DatabasePassword" validate:"required"`

	// KDFIterations of the database key, 0 for the sqlcipher default.
	KDFIterations int `json:"KDFIterations" validate:"min=0"`

	// ChainID is the chain claims and proofs are bound to.
	ChainID string `json:"ChainID" validate:"required"`

	// ContractAddress is the bech32 address claims and proofs are bound to.
	ContractAddress string `json:"ContractAddress" validate:"required"`

	Verifiers VerifiersConfig `json:"Verifiers"`

	// Admins are the identities allowed to bypass verification.
	Admins []string `json:"Admins"`

	// PrimaryPolicy is "overwrite" (default) or "keep".
	PrimaryPolicy string `json:"PrimaryPolicy" validate:"omitempty,oneof=overwrite keep"`

	HTTPEnabled bool   `json:"HTTPEnabled"`
	HTTPHost    string `json:"HTTPHost"`
	HTTPPort    int    `json:"HTTPPort" validate:"min=0,max=65535"`

	// HTTPRateLimit caps JSON-RPC requests per second, 0 for no limit.
	HTTPRateLimit float64 `json:"HTTPRateLimit" validate:"min=0"`
	HTTPRateBurst int     `json:"HTTPRateBurst" validate:"min=0"`

	// MetricsAddress enables the prometheus endpoint when set, e.g. ":9305".
	MetricsAddress string `json:"MetricsAddress"`

	LogSettings logutils.LogSettings `json:"LogSettings"`
}

// NewConfig creates a configuration with bare-minimum defaults.
// Important: the returned config is not validated.
func NewConfig(dataDir string) *Config {
	return &Config{
		DataDir:       dataDir,
		KDFIterations: sqlite.KdfIterationsNumber,
		PrimaryPolicy: records.PrimaryOverwrite.String(),
		HTTPHost:      "localhost",
		HTTPPort:      8645,
		LogSettings: logutils.LogSettings{
			Enabled:  true,
			Level:    "INFO",
			ToStderr: true,
		},
	}
}

// NewConfigFromJSON parses incoming JSON over the defaults and validates it.
func NewConfigFromJSON(configJSON string) (*Config, error) {
	config := NewConfig("")
	if err := loadConfigFromJSON(configJSON, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFromFile reads and validates a JSON configuration file.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfigFromJSON(string(data))
}

func loadConfigFromJSON(configJSON string, config *Config) error {
	decoder := json.NewDecoder(strings.NewReader(configJSON))
	decoder.DisallowUnknownFields()
	// override default configuration with values by JSON input
	return decoder.Decode(config)
}

// Validate checks if Config fields have valid values.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return err
	}

	if _, _, err := bech32.Decode(c.ContractAddress); err != nil {
		return fmt.Errorf("ContractAddress is invalid: %v", err)
	}

	if _, err := c.VerifierSet(); err != nil {
		return fmt.Errorf("Verifiers are invalid: %v", err)
	}

	for _, admin := range c.Admins {
		if admin == "" {
			return fmt.Errorf("Admins contains an empty identity")
		}
	}

	if c.MetricsAddress != "" && c.HTTPEnabled && c.MetricsAddress == c.HTTPAddress() {
		return fmt.Errorf("MetricsAddress and HTTP address are the same: %s", c.MetricsAddress)
	}

	return nil
}

// VerifierSet decodes the verifier keys.
func (c *Config) VerifierSet() (*claim.VerifierSet, error) {
	keys := make([][]byte, 0, len(c.Verifiers.Keys))
	for i, key := range c.Verifiers.Keys {
		decoded, err := hex.DecodeString(strings.TrimPrefix(key, "0x"))
		if err != nil {
			return nil, fmt.Errorf("key %d: %v", i, err)
		}
		keys = append(keys, decoded)
	}
	return claim.NewVerifierSet(keys, c.Verifiers.Threshold)
}

// Policy returns the primary name policy of the record store.
func (c *Config) Policy() records.PrimaryPolicy {
	if c.PrimaryPolicy == records.PrimaryKeepExisting.String() {
		return records.PrimaryKeepExisting
	}
	return records.PrimaryOverwrite
}

// RateLimiter returns the limiter of the JSON-RPC endpoint, nil when unlimited.
func (c *Config) RateLimiter() *rate.Limiter {
	if c.HTTPRateLimit == 0 {
		return nil
	}
	burst := c.HTTPRateBurst
	if burst == 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(c.HTTPRateLimit), burst)
}

func (c *Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

func (c *Config) AppDatabasePath() string {
	return filepath.Join(c.DataDir, AppDatabaseFile)
}

func (c *Config) RegistryDatabasePath() string {
	return filepath.Join(c.DataDir, RegistryDatabaseFile)
}

// String dumps config object as nicely indented JSON, without the password.
func (c *Config) String() string {
	redacted := *c
	if redacted.DatabasePassword != "" {
		redacted.DatabasePassword = "***"
	}
	data, _ := json.MarshalIndent(redacted, "", "    ")
	return string(data)
}
