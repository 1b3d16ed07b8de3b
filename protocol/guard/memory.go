package guard

import (
	mapset "github.com/deckarep/golang-set"
)

// MemoryClaimGuard is a ClaimGuard kept in memory. Not safe for concurrent use.
type MemoryClaimGuard struct {
	claims map[string]string
}

func NewMemoryClaimGuard() *MemoryClaimGuard {
	return &MemoryClaimGuard{claims: make(map[string]string)}
}

func (g *MemoryClaimGuard) ClaimedName(externalID string) (string, bool, error) {
	name, ok := g.claims[externalID]
	return name, ok, nil
}

func (g *MemoryClaimGuard) Register(externalID, name string) error {
	if claimed, ok := g.claims[externalID]; ok {
		return &DuplicateExternalIDError{ExternalID: externalID, Name: claimed}
	}
	g.claims[externalID] = name
	return nil
}

// MemorySignatureGuard is a SignatureGuard kept in memory. Not safe for
// concurrent use.
type MemorySignatureGuard struct {
	used mapset.Set
}

func NewMemorySignatureGuard() *MemorySignatureGuard {
	return &MemorySignatureGuard{used: mapset.NewThreadUnsafeSet()}
}

func (g *MemorySignatureGuard) Consume(signature []byte) error {
	if !g.used.Add(string(signature)) {
		return ErrSignatureAlreadyUsed
	}
	return nil
}
