package records

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// Record binds an address to a name under one bech32 prefix.
type Record struct {
	Name    string `json:"name"`
	Prefix  string `json:"prefix"`
	Address string `json:"address"`
}

// Storage is the raw key-value layout behind a Store. It keeps no
// invariant of its own.
type Storage interface {
	Get(name, prefix string) (address string, found bool, err error)
	Put(record Record) error
	Delete(name, prefix string) error
	// RecordsOf returns the records of name ordered by prefix.
	RecordsOf(name string) ([]Record, error)

	AddReverse(address, name string) error
	RemoveReverse(address, name string) error
	// NamesOf returns the names bound to address in lexicographic order.
	NamesOf(address string) ([]string, error)

	Primary(address string) (name string, found bool, err error)
	SetPrimary(address, name string) error
	DeletePrimary(address string) error
}

type slot struct {
	name   string
	prefix string
}

// MemoryStorage keeps everything in maps. It is not safe for concurrent use.
type MemoryStorage struct {
	records map[slot]string
	reverse map[string]mapset.Set
	primary map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		records: make(map[slot]string),
		reverse: make(map[string]mapset.Set),
		primary: make(map[string]string),
	}
}

func (s *MemoryStorage) Get(name, prefix string) (string, bool, error) {
	address, ok := s.records[slot{name, prefix}]
	return address, ok, nil
}

func (s *MemoryStorage) Put(record Record) error {
	s.records[slot{record.Name, record.Prefix}] = record.Address
	return nil
}

func (s *MemoryStorage) Delete(name, prefix string) error {
	delete(s.records, slot{name, prefix})
	return nil
}

func (s *MemoryStorage) RecordsOf(name string) ([]Record, error) {
	var result []Record
	for k, address := range s.records {
		if k.name == name {
			result = append(result, Record{Name: k.name, Prefix: k.prefix, Address: address})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Prefix < result[j].Prefix
	})
	return result, nil
}

func (s *MemoryStorage) AddReverse(address, name string) error {
	names, ok := s.reverse[address]
	if !ok {
		names = mapset.NewThreadUnsafeSet()
		s.reverse[address] = names
	}
	names.Add(name)
	return nil
}

func (s *MemoryStorage) RemoveReverse(address, name string) error {
	names, ok := s.reverse[address]
	if !ok {
		return nil
	}
	names.Remove(name)
	if names.Cardinality() == 0 {
		delete(s.reverse, address)
	}
	return nil
}

func (s *MemoryStorage) NamesOf(address string) ([]string, error) {
	names, ok := s.reverse[address]
	if !ok {
		return nil, nil
	}
	result := make([]string, 0, names.Cardinality())
	for _, name := range names.ToSlice() {
		result = append(result, name.(string))
	}
	sort.Strings(result)
	return result, nil
}

func (s *MemoryStorage) Primary(address string) (string, bool, error) {
	name, ok := s.primary[address]
	return name, ok, nil
}

func (s *MemoryStorage) SetPrimary(address, name string) error {
	s.primary[address] = name
	return nil
}

func (s *MemoryStorage) DeletePrimary(address string) error {
	delete(s.primary, address)
	return nil
}
