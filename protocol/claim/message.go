package claim

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// VerifyingMessage is the statement verifiers sign off-chain. Binding it to
// the claimer, the contract and the chain keeps a signature from being
// replayed in another context.
type VerifyingMessage struct {
	Name             string `json:"name"`
	Claimer          string `json:"claimer"`
	ContractAddress  string `json:"contract_address"`
	ChainID          string `json:"chain_id"`
	UniqueExternalID string `json:"unique_external_id"`
}

// ParseVerifyingMessage decodes raw. Unknown, missing or empty fields are
// rejected with *ParseError.
func ParseVerifyingMessage(raw string) (*VerifyingMessage, error) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
	decoder.DisallowUnknownFields()

	var msg VerifyingMessage
	if err := decoder.Decode(&msg); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, &ParseError{Err: errors.New("trailing data after message")}
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", msg.Name},
		{"claimer", msg.Claimer},
		{"contract_address", msg.ContractAddress},
		{"chain_id", msg.ChainID},
		{"unique_external_id", msg.UniqueExternalID},
	} {
		if field.value == "" {
			return nil, &ParseError{Err: fmt.Errorf("missing field %s", field.name)}
		}
	}
	return &msg, nil
}

// Match compares the message with the claimed name and the request
// context, in the fixed order name, claimer, contract_address, chain_id.
func (m *VerifyingMessage) Match(name string, env Env) error {
	checks := []VerifyingMessageMismatchError{
		{Field: "name", Expected: name, Actual: m.Name},
		{Field: "claimer", Expected: env.Sender, Actual: m.Claimer},
		{Field: "contract_address", Expected: env.ContractAddress, Actual: m.ContractAddress},
		{Field: "chain_id", Expected: env.ChainID, Actual: m.ChainID},
	}
	for i := range checks {
		if checks[i].Expected != checks[i].Actual {
			return &checks[i]
		}
	}
	return nil
}
