package domain

import "errors"

var (
	// ErrNotSetup is returned when an operation needs a key pair and the
	// keystore has no record for the owner.
	ErrNotSetup = errors.New("no key pair set up for this user")

	// ErrAlreadySetup is returned when Setup runs for an owner that already
	// has a wrapped key record.
	ErrAlreadySetup = errors.New("key pair already set up for this user")

	// ErrSessionLocked is returned by decrypt operations when no unlocked
	// private key is resident for the owner.
	ErrSessionLocked = errors.New("session is locked")

	// ErrAuthenticationFailed covers every way a passphrase can fail to
	// unwrap a key: wrong passphrase, corrupted blob, bad tag. The cases are
	// indistinguishable to the caller.
	ErrAuthenticationFailed = errors.New("wrong passphrase or corrupted key data")

	// ErrDecryptionFailed covers every way a payload can fail to decrypt,
	// whether the wrapped content key or the ciphertext tag was at fault.
	// The cases are indistinguishable to the caller.
	ErrDecryptionFailed = errors.New("payload could not be decrypted")

	// ErrMissingRecipientKey is returned when a multi-recipient payload has
	// no wrapped content key for the requesting identity.
	ErrMissingRecipientKey = errors.New("payload has no key for this recipient")

	// ErrInvalidBackup is returned when an import blob is structurally
	// malformed.
	ErrInvalidBackup = errors.New("backup blob is malformed")

	// ErrEntropyUnavailable means the platform RNG failed. Fatal; not
	// retryable without a platform fix.
	ErrEntropyUnavailable = errors.New("platform entropy source unavailable")

	// ErrCollaboratorUnavailable means Persistent Keystore or Directory
	// Service I/O failed. Callers may retry with backoff; this core never
	// retries on its own.
	ErrCollaboratorUnavailable = errors.New("keystore or directory unavailable")

	// ErrNotFound is returned by collaborator lookups for unknown owners.
	ErrNotFound = errors.New("not found")

	// ErrWeakPassphrase is returned when a passphrase fails the strength
	// policy during Setup or ChangePassphrase.
	ErrWeakPassphrase = errors.New("passphrase does not meet the strength policy")
)
