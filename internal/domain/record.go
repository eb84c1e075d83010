package domain

import (
	"time"

	"github.com/google/uuid"
)

// WrappedKeyRecord is the persisted form of a private key: an opaque blob
// produced by the keywrap package, owned by the Persistent Keystore.
type WrappedKeyRecord struct {
	RecordID   uuid.UUID `json:"record_id"`
	OwnerID    OwnerID   `json:"owner_id"`
	Wrapped    []byte    `json:"wrapped"`
	KeyVersion int       `json:"key_version"` // starts at 1, bumped on passphrase change
	CreatedAt  time.Time `json:"created_at"`
}
