package adr36

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// MessageVersion is bumped whenever the layout of Message changes.
const MessageVersion = 1

const msgSignDataType = "sign/MsgSignData"

// Message builds the text a signer approves to bind its address to a name.
// The salt makes every message unique even when all other fields repeat.
func Message(proof Proof, env Env) string {
	var b strings.Builder
	fmt.Fprintf(&b, "status-names address binding v%d\n", MessageVersion)
	fmt.Fprintf(&b, "name: %s\n", proof.Name)
	fmt.Fprintf(&b, "bech32_prefix: %s\n", proof.Prefix)
	fmt.Fprintf(&b, "claimer: %s\n", env.Sender)
	fmt.Fprintf(&b, "signer: %s\n", proof.Signer)
	fmt.Fprintf(&b, "chain_id: %s\n", env.ChainID)
	fmt.Fprintf(&b, "contract_address: %s\n", env.ContractAddress)
	fmt.Fprintf(&b, "salt: %s", proof.Salt)
	return b.String()
}

// The amino sign doc wallets produce for arbitrary data. Fields are
// declared in alphabetical order so json.Marshal yields the sorted form.
type signDoc struct {
	AccountNumber string    `json:"account_number"`
	ChainID       string    `json:"chain_id"`
	Fee           fee       `json:"fee"`
	Memo          string    `json:"memo"`
	Msgs          []signMsg `json:"msgs"`
	Sequence      string    `json:"sequence"`
}

type fee struct {
	Amount []struct{} `json:"amount"`
	Gas    string     `json:"gas"`
}

type signMsg struct {
	Type  string       `json:"type"`
	Value signMsgValue `json:"value"`
}

type signMsgValue struct {
	Data   string `json:"data"`
	Signer string `json:"signer"`
}

// SignBytes wraps data in the ADR-36 sign doc for signer.
func SignBytes(signer string, data []byte) []byte {
	doc := signDoc{
		AccountNumber: "0",
		Fee:           fee{Amount: []struct{}{}, Gas: "0"},
		Msgs: []signMsg{{
			Type: msgSignDataType,
			Value: signMsgValue{
				Data:   base64.StdEncoding.EncodeToString(data),
				Signer: signer,
			},
		}},
		Sequence: "0",
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	// only fails on unsupported types
	_ = encoder.Encode(doc)
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// Digest is the 32 bytes hash the proof signature is made over.
func Digest(proof Proof, env Env) []byte {
	hash := sha256.Sum256(SignBytes(proof.Signer, []byte(Message(proof, env))))
	return hash[:]
}
