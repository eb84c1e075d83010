package directory

import (
	"context"
	"sync"

	"notelock/internal/domain"
)

// MemoryDirectory is an in-process directory for tests.
type MemoryDirectory struct {
	mu   sync.Mutex
	keys map[domain.OwnerID][]byte
}

// NewMemoryDirectory returns an empty MemoryDirectory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{keys: make(map[domain.OwnerID][]byte)}
}

// Publish stores a copy of the owner's public key.
func (d *MemoryDirectory) Publish(ctx context.Context, owner domain.OwnerID, publicKey []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys[owner] = append([]byte(nil), publicKey...)
	return nil
}

// Lookup returns the owner's public key, or domain.ErrNotFound.
func (d *MemoryDirectory) Lookup(ctx context.Context, owner domain.OwnerID) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	der, ok := d.keys[owner]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), der...), nil
}

// LookupMany resolves several owners; unknown owners are absent from the
// result.
func (d *MemoryDirectory) LookupMany(ctx context.Context, owners []domain.OwnerID) (map[domain.OwnerID][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[domain.OwnerID][]byte, len(owners))
	for _, owner := range owners {
		if der, ok := d.keys[owner]; ok {
			out[owner] = append([]byte(nil), der...)
		}
	}
	return out, nil
}

// Compile-time assertion that MemoryDirectory implements domain.Directory.
var _ domain.Directory = (*MemoryDirectory)(nil)
