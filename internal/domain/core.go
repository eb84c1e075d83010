package domain

// OwnerID is the stable external user identifier supplied by the surrounding
// identity system. This core never interprets it.
type OwnerID string

// String returns the string form of the owner id.
func (id OwnerID) String() string { return string(id) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
