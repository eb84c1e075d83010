package store

import (
	"context"
	"sync"

	"notelock/internal/domain"
)

// MemoryKeystore is an in-process keystore for tests and ephemeral hosts.
type MemoryKeystore struct {
	mu      sync.Mutex
	records map[domain.OwnerID]domain.WrappedKeyRecord
}

// NewMemoryKeystore returns an empty MemoryKeystore.
func NewMemoryKeystore() *MemoryKeystore {
	return &MemoryKeystore{records: make(map[domain.OwnerID]domain.WrappedKeyRecord)}
}

// Put stores a copy of the record.
func (s *MemoryKeystore) Put(ctx context.Context, record domain.WrappedKeyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record.Wrapped = append([]byte(nil), record.Wrapped...)
	s.records[record.OwnerID] = record
	return nil
}

// Get returns the record for owner, or domain.ErrNotFound.
func (s *MemoryKeystore) Get(ctx context.Context, owner domain.OwnerID) (domain.WrappedKeyRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.WrappedKeyRecord{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[owner]
	if !ok {
		return domain.WrappedKeyRecord{}, domain.ErrNotFound
	}
	rec.Wrapped = append([]byte(nil), rec.Wrapped...)
	return rec, nil
}

// Delete removes the record for owner; absent records are a no-op.
func (s *MemoryKeystore) Delete(ctx context.Context, owner domain.OwnerID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, owner)
	return nil
}

// Compile-time assertion that MemoryKeystore implements domain.Keystore.
var _ domain.Keystore = (*MemoryKeystore)(nil)
