// Package records resolves names to addresses on many chains, one address
// per bech32 prefix, and keeps a reverse index with a primary name per
// address.
package records

import (
	"strings"

	"github.com/status-im/status-names/bech32"
)

// PrimaryPolicy tells what SetRecord does to an address that already has
// a primary name.
type PrimaryPolicy int

const (
	// PrimaryOverwrite makes the latest bound name primary.
	PrimaryOverwrite PrimaryPolicy = iota
	// PrimaryKeepExisting only sets a primary for addresses without one.
	PrimaryKeepExisting
)

func (p PrimaryPolicy) String() string {
	switch p {
	case PrimaryOverwrite:
		return "overwrite"
	case PrimaryKeepExisting:
		return "keep"
	}
	return "unknown"
}

// NameEntry is a name bound to an address.
type NameEntry struct {
	Name    string `json:"name"`
	Primary bool   `json:"primary"`
}

// Store applies record operations on a Storage. It guarantees that an
// address with records has exactly one primary name, taken among them,
// and that an address without records has none.
type Store struct {
	storage Storage
	policy  PrimaryPolicy
}

func NewStore(storage Storage, policy PrimaryPolicy) *Store {
	return &Store{storage: storage, policy: policy}
}

// addressPrefix returns the prefix and canonical form of address, checking
// the prefix against the requested one when given.
func addressPrefix(prefix, address string) (string, string, error) {
	canonical, err := bech32.Normalize(address)
	if err != nil {
		return "", "", err
	}
	actual, err := bech32.Prefix(canonical)
	if err != nil {
		return "", "", err
	}
	if prefix != "" && strings.ToLower(prefix) != actual {
		return "", "", &PrefixMismatchError{Prefix: prefix, Address: address}
	}
	return actual, canonical, nil
}

// canonical lowercases address for lookups. Strings that are not bech32
// are kept as they are and simply match nothing.
func canonical(address string) string {
	if normalized, err := bech32.Normalize(address); err == nil {
		return normalized
	}
	return address
}

// SetRecord binds address to name under prefix, replacing the address
// previously bound there.
func (s *Store) SetRecord(name, prefix, address string) error {
	prefix, address, err := addressPrefix(prefix, address)
	if err != nil {
		return err
	}

	previous, found, err := s.storage.Get(name, prefix)
	if err != nil {
		return err
	}
	if found && previous != address {
		if err := s.storage.RemoveReverse(previous, name); err != nil {
			return err
		}
		if err := s.repairPrimary(previous, name); err != nil {
			return err
		}
	}

	if err := s.storage.Put(Record{Name: name, Prefix: prefix, Address: address}); err != nil {
		return err
	}
	if err := s.storage.AddReverse(address, name); err != nil {
		return err
	}

	_, hasPrimary, err := s.storage.Primary(address)
	if err != nil {
		return err
	}
	if !hasPrimary || s.policy == PrimaryOverwrite {
		return s.storage.SetPrimary(address, name)
	}
	return nil
}

// repairPrimary moves the primary of address off a name it lost, to its
// first remaining name if any.
func (s *Store) repairPrimary(address, lost string) error {
	primary, found, err := s.storage.Primary(address)
	if err != nil || !found || primary != lost {
		return err
	}
	names, err := s.storage.NamesOf(address)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return s.storage.DeletePrimary(address)
	}
	return s.storage.SetPrimary(address, names[0])
}

// RemoveRecord unbinds address from name. prefix may be empty, in which
// case the prefix of address is used. A non empty replacement becomes the
// primary name of address before the removal is checked.
func (s *Store) RemoveRecord(name, prefix, address, replacement string) error {
	prefix, address, err := addressPrefix(prefix, address)
	if err != nil {
		return err
	}

	current, found, err := s.storage.Get(name, prefix)
	if err != nil {
		return err
	}
	if !found || current != address {
		return &RecordNotFoundError{Name: name, Prefix: prefix, Address: address}
	}

	if replacement != "" && replacement != name {
		if err := s.SetPrimary(replacement, address); err != nil {
			return err
		}
	}

	primary, hasPrimary, err := s.storage.Primary(address)
	if err != nil {
		return err
	}
	if hasPrimary && primary == name {
		names, err := s.storage.NamesOf(address)
		if err != nil {
			return err
		}
		if len(names) > 1 {
			return &PrimaryRemovalNotAllowedError{Name: name, Address: address, Records: len(names)}
		}
		if err := s.storage.DeletePrimary(address); err != nil {
			return err
		}
	}

	if err := s.storage.Delete(name, prefix); err != nil {
		return err
	}
	return s.storage.RemoveReverse(address, name)
}

// SetPrimary makes name the primary name of address. The record binding
// them must exist.
func (s *Store) SetPrimary(name, address string) error {
	prefix, address, err := addressPrefix("", address)
	if err != nil {
		return err
	}
	current, found, err := s.storage.Get(name, prefix)
	if err != nil {
		return err
	}
	if !found || current != address {
		return &RecordNotFoundError{Name: name, Prefix: prefix, Address: address}
	}
	return s.storage.SetPrimary(address, name)
}

// Resolve returns the address bound to name under prefix.
func (s *Store) Resolve(name, prefix string) (string, error) {
	prefix = strings.ToLower(prefix)
	address, found, err := s.storage.Get(name, prefix)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &RecordNotFoundError{Name: name, Prefix: prefix}
	}
	return address, nil
}

// ResolveFullName resolves "<name>.<prefix>", e.g. "alice.osmo".
func (s *Store) ResolveFullName(fullName string) (string, error) {
	i := strings.LastIndex(fullName, ".")
	if i <= 0 || i == len(fullName)-1 {
		return "", ErrInvalidFullName
	}
	return s.Resolve(fullName[:i], fullName[i+1:])
}

func (s *Store) RecordsOf(name string) ([]Record, error) {
	return s.storage.RecordsOf(name)
}

// NamesOf lists the names bound to address, flagging the primary one.
func (s *Store) NamesOf(address string) ([]NameEntry, error) {
	address = canonical(address)
	names, err := s.storage.NamesOf(address)
	if err != nil {
		return nil, err
	}
	primary, _, err := s.storage.Primary(address)
	if err != nil {
		return nil, err
	}
	result := make([]NameEntry, 0, len(names))
	for _, name := range names {
		result = append(result, NameEntry{Name: name, Primary: name == primary})
	}
	return result, nil
}

func (s *Store) PrimaryOf(address string) (string, bool, error) {
	return s.storage.Primary(canonical(address))
}
