package directory

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"notelock/internal/crypto"
	"notelock/internal/domain"
)

// FileDirectory stores one PEM-encoded public key per owner under dir. It is
// the directory used when everyone shares a machine (or a synced folder),
// and by the CLI when no directory URL is configured.
type FileDirectory struct {
	dir string
	mu  sync.Mutex
}

// NewFileDirectory returns a FileDirectory rooted at dir.
func NewFileDirectory(dir string) *FileDirectory { return &FileDirectory{dir: dir} }

// Publish writes the owner's public key as PEM.
func (d *FileDirectory) Publish(ctx context.Context, owner domain.OwnerID, publicKey []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	pub, err := crypto.ParsePublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("publish %q: %w", owner, err)
	}
	pemBytes, err := crypto.EncodePublicKeyPEM(pub)
	if err != nil {
		return err
	}
	if err := os.WriteFile(d.path(owner), pemBytes, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCollaboratorUnavailable, err)
	}
	return nil
}

// Lookup returns the owner's public key as PKIX DER, or domain.ErrNotFound.
func (d *FileDirectory) Lookup(ctx context.Context, owner domain.OwnerID) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lookupLocked(ctx, owner)
}

// LookupMany resolves several owners; unknown owners are simply absent from
// the result.
func (d *FileDirectory) LookupMany(ctx context.Context, owners []domain.OwnerID) (map[domain.OwnerID][]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make(map[domain.OwnerID][]byte, len(owners))
	for _, owner := range owners {
		der, err := d.lookupLocked(ctx, owner)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[owner] = der
	}
	return out, nil
}

func (d *FileDirectory) lookupLocked(ctx context.Context, owner domain.OwnerID) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(d.path(owner))
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCollaboratorUnavailable, err)
	}
	pub, err := crypto.DecodePublicKeyPEM(data)
	if err != nil {
		return nil, fmt.Errorf("directory entry for %q: %w", owner, err)
	}
	return crypto.MarshalPublicKey(pub)
}

func (d *FileDirectory) path(owner domain.OwnerID) string {
	return filepath.Join(d.dir, url.PathEscape(owner.String())+".pub")
}

// Compile-time assertion that FileDirectory implements domain.Directory.
var _ domain.Directory = (*FileDirectory)(nil)
