package domain

import "crypto/rsa"

// KeyPair holds a user's long-term asymmetric keys. The public half is
// published to the Directory Service; the private half only ever leaves the
// process wrapped under a passphrase-derived key.
type KeyPair struct {
	Public  *rsa.PublicKey
	Private *rsa.PrivateKey
}
