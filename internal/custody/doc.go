// Package custody owns the unlocked-key lifecycle: setting up a key pair,
// unlocking and locking it per owner, changing the passphrase, and the
// encrypt/decrypt surface the surrounding application calls.
//
// # State machine
//
// Per owner the state is Uninitialized (no record), Locked (record exists,
// not decrypted), Unlocked (private key resident in memory) or Error
// (collaborator I/O failed). Decrypt operations are gated solely on a
// resident session key and fail closed without one.
//
// # Concurrency
//
// State-changing operations (Setup, Unlock, ChangePassphrase, backup
// import/export) are serialized per owner with a keyed mutex: a second
// concurrent call waits rather than racing the same wrapped record.
// Decrypts take a read lock on the session table and hold it for the
// duration of the operation, so Lock blocks until in-flight reads complete
// and any decrypt that starts after Lock fails closed.
package custody
