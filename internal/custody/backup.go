package custody

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"notelock/internal/crypto"
	"notelock/internal/domain"
	"notelock/internal/keywrap"
)

// backupVersion is the current portable bundle format version.
const backupVersion = 1

// backupBundle is the structured envelope around the (still encrypted)
// wrapped key record. The private key is never in plaintext here.
type backupBundle struct {
	V      int                     `json:"v"`
	Record domain.WrappedKeyRecord `json:"record"`
}

// ExportBackup returns a portable base64 bundle of the owner's wrapped key
// record. The passphrase is verified first so a user cannot export a backup
// they will never be able to restore; the unwrapped key is discarded
// immediately after the check.
func (s *Service) ExportBackup(ctx context.Context, owner domain.OwnerID, passphrase string) (string, error) {
	mu := s.ownerLock(owner)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.keystore.Get(ctx, owner)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrNotSetup
	}
	if err != nil {
		return "", err
	}

	// Sanity check only; the result is dropped on the floor.
	if _, err := keywrap.Unwrap(record.Wrapped, passphrase); err != nil {
		return "", err
	}

	raw, err := json.Marshal(backupBundle{V: backupVersion, Record: record})
	if err != nil {
		return "", err
	}
	s.log.Info("backup exported", "owner", owner, "key_version", record.KeyVersion)
	return base64.StdEncoding.EncodeToString(raw), nil
}

// ImportBackup restores a bundle produced by ExportBackup as the active
// wrapped record for owner and leaves the session unlocked. Structural
// problems surface as domain.ErrInvalidBackup; a passphrase that does not
// unwrap the bundle surfaces as domain.ErrAuthenticationFailed.
func (s *Service) ImportBackup(ctx context.Context, owner domain.OwnerID, blob string, passphrase string) error {
	mu := s.ownerLock(owner)
	mu.Lock()
	defer mu.Unlock()

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidBackup, err)
	}
	var bundle backupBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidBackup, err)
	}
	if bundle.V != backupVersion {
		return fmt.Errorf("%w: unsupported bundle version %d", domain.ErrInvalidBackup, bundle.V)
	}
	if len(bundle.Record.Wrapped) == 0 {
		return fmt.Errorf("%w: empty wrapped key", domain.ErrInvalidBackup)
	}

	priv, err := keywrap.Unwrap(bundle.Record.Wrapped, passphrase)
	if err != nil {
		return err
	}
	pubDER, err := crypto.MarshalPublicKey(&priv.PublicKey)
	if err != nil {
		return err
	}

	prior, err := s.keystore.Get(ctx, owner)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	hadPrior := err == nil

	record := bundle.Record
	record.OwnerID = owner
	if err := s.keystore.Put(ctx, record); err != nil {
		return err
	}

	// Re-publish the public key so a restore onto a fresh directory leaves
	// keystore and directory consistent. As in Setup, a publish failure must
	// not leave a half-published state: the keystore is rolled back to what
	// it held before the import.
	if err := s.directory.Publish(ctx, owner, pubDER); err != nil {
		if hadPrior {
			if putErr := s.keystore.Put(ctx, prior); putErr != nil {
				s.log.Error("import rollback failed, keystore record may be inconsistent",
					"owner", owner, "error", putErr.Error())
			}
		} else if delErr := s.keystore.Delete(ctx, owner); delErr != nil {
			s.log.Error("import rollback failed, keystore record may be orphaned",
				"owner", owner, "error", delErr.Error())
		}
		return err
	}

	s.putSession(owner, priv)
	s.log.Info("backup imported", "owner", owner, "key_version", record.KeyVersion)
	return nil
}
