// Package domain holds the core types shared across notelock: owner
// identifiers, key material wrappers, wrapped-key records, encrypted payload
// envelopes, the passphrase strength report, the error taxonomy, and the
// interfaces of the two external collaborators (Persistent Keystore and
// Directory Service) plus the custody service itself.
//
// The package contains no crypto logic, so every other package can depend
// on it without cycles.
package domain
