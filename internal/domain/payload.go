package domain

// EncryptedPayload is a hybrid-encrypted message for a single recipient: the
// plaintext sealed once with a fresh content key, and that content key wrapped
// with the recipient's public key.
type EncryptedPayload struct {
	Version           int    `json:"version"`
	Algorithm         string `json:"algorithm"`
	Ciphertext        []byte `json:"ciphertext"`
	IV                []byte `json:"iv"`
	WrappedContentKey []byte `json:"wrapped_content_key"`
}

// MultiRecipientEncryptedPayload shares one ciphertext and IV across N
// recipients; the content key is wrapped independently per recipient so the
// bulk encryption cost stays O(1) in the number of readers.
type MultiRecipientEncryptedPayload struct {
	Version           int                 `json:"version"`
	Algorithm         string              `json:"algorithm"`
	Ciphertext        []byte              `json:"ciphertext"`
	IV                []byte              `json:"iv"`
	WrappedContentKeys map[OwnerID][]byte `json:"wrapped_content_keys"`
}
