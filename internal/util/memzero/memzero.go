// Package memzero provides best-effort wiping for sensitive byte slices:
// passphrase-derived keys, unwrapped private key material, content keys.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros. Best effort: it reduces the lifetime of
// secrets in memory but cannot reach copies the runtime already made.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
