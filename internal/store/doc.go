// Package store provides Persistent Keystore adapters: durable storage for
// wrapped private key records addressed by owner id.
//
// FileKeystore keeps one JSON file per owner and replaces it atomically via
// a temp file and rename. MemoryKeystore backs tests.
package store
