// Package crypto exposes the minimal primitives used by notelock.
//
// Contents
//
//   - RSA key pair generation sized for OAEP key wrapping (GenerateKeyPair)
//   - Fresh symmetric content keys and AEAD nonces (GenerateContentKey,
//     GenerateNonce)
//   - DER/PEM encoding helpers for key material (MarshalPublicKey,
//     ParsePublicKey, MarshalPrivateKey, ParsePrivateKey)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// All randomness comes from crypto/rand. A failing platform RNG surfaces as
// domain.ErrEntropyUnavailable; nothing here falls back to a weaker source.
// Callers should treat returned secrets as sensitive and rely on
// memzero.Zero when practical to reduce lifetime in memory.
package crypto
