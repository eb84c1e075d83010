package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"notelock/internal/domain"
)

// FileKeystore stores one wrapped key record per owner under dir.
type FileKeystore struct {
	dir string
	mu  sync.Mutex
}

// NewFileKeystore returns a FileKeystore rooted at dir.
func NewFileKeystore(dir string) *FileKeystore { return &FileKeystore{dir: dir} }

// Put writes or replaces the record for record.OwnerID.
func (s *FileKeystore) Put(ctx context.Context, record domain.WrappedKeyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeJSON(s.path(record.OwnerID), record, 0o600); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCollaboratorUnavailable, err)
	}
	return nil
}

// Get loads the record for owner, or domain.ErrNotFound.
func (s *FileKeystore) Get(ctx context.Context, owner domain.OwnerID) (domain.WrappedKeyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domain.WrappedKeyRecord{}, err
	}
	var rec domain.WrappedKeyRecord
	if err := readJSON(s.path(owner), &rec); err != nil {
		if isNotExist(err) {
			return domain.WrappedKeyRecord{}, domain.ErrNotFound
		}
		return domain.WrappedKeyRecord{}, fmt.Errorf("%w: %v", domain.ErrCollaboratorUnavailable, err)
	}
	return rec, nil
}

// Delete removes the record for owner. Deleting an absent record is a no-op,
// which makes the setup rollback path idempotent.
func (s *FileKeystore) Delete(ctx context.Context, owner domain.OwnerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path(owner)); err != nil && !isNotExist(err) {
		return fmt.Errorf("%w: %v", domain.ErrCollaboratorUnavailable, err)
	}
	return nil
}

// path maps an owner id to its record file. The id is path-escaped so
// arbitrary external identifiers cannot traverse out of dir.
func (s *FileKeystore) path(owner domain.OwnerID) string {
	return filepath.Join(s.dir, "key_"+url.PathEscape(owner.String())+".json")
}

// Compile-time assertion that FileKeystore implements domain.Keystore.
var _ domain.Keystore = (*FileKeystore)(nil)
