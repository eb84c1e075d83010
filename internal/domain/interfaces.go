package domain

import "context"

// Keystore is the Persistent Keystore collaborator: durable storage for
// wrapped private key records, addressed by owner id. Overwrites are
// whole-record; this core treats the store as consistent per owner.
type Keystore interface {
	Put(ctx context.Context, record WrappedKeyRecord) error
	Get(ctx context.Context, owner OwnerID) (WrappedKeyRecord, error)
	Delete(ctx context.Context, owner OwnerID) error
}

// Directory is the Directory Service collaborator: it serves public keys
// (PKIX DER) per owner id.
type Directory interface {
	Publish(ctx context.Context, owner OwnerID, publicKey []byte) error
	Lookup(ctx context.Context, owner OwnerID) ([]byte, error)
	LookupMany(ctx context.Context, owners []OwnerID) (map[OwnerID][]byte, error)
}

// Custody is the session custody service: key lifecycle, unlock state, and
// the encrypt/decrypt surface the surrounding application calls.
type Custody interface {
	Setup(ctx context.Context, owner OwnerID, passphrase string) (Fingerprint, error)
	Unlock(ctx context.Context, owner OwnerID, passphrase string) error
	Lock(owner OwnerID)
	ChangePassphrase(ctx context.Context, owner OwnerID, oldPassphrase, newPassphrase string) error
	Status(ctx context.Context, owner OwnerID) (SessionState, error)

	EncryptTo(ctx context.Context, recipient OwnerID, plaintext []byte) (EncryptedPayload, error)
	EncryptFor(ctx context.Context, recipients []OwnerID, plaintext []byte) (MultiRecipientEncryptedPayload, error)
	Decrypt(owner OwnerID, payload EncryptedPayload) ([]byte, error)
	DecryptFrom(owner OwnerID, payload MultiRecipientEncryptedPayload) ([]byte, error)

	ExportBackup(ctx context.Context, owner OwnerID, passphrase string) (string, error)
	ImportBackup(ctx context.Context, owner OwnerID, blob string, passphrase string) error
}
