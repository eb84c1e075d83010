package domain

// SessionState is the custody state for one owner.
type SessionState int

const (
	// StateUninitialized means no key pair exists for this owner.
	StateUninitialized SessionState = iota
	// StateLocked means a wrapped key record exists but is not decrypted.
	StateLocked
	// StateUnlocked means the decrypted private key is resident in memory.
	StateUnlocked
	// StateError means the state could not be determined (collaborator I/O
	// failed). Distinguishable from Locked so a UI can say "try again later"
	// instead of prompting for a passphrase.
	StateError
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	default:
		return "error"
	}
}
