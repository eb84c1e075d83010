package custody

import (
	"context"
	"crypto/rsa"
	"fmt"

	"notelock/internal/crypto"
	"notelock/internal/domain"
	"notelock/internal/envelope"
)

// EncryptTo seals plaintext for one recipient. Encryption needs only the
// recipient's published public key; no unlock state is required.
func (s *Service) EncryptTo(ctx context.Context, recipient domain.OwnerID, plaintext []byte) (domain.EncryptedPayload, error) {
	der, err := s.directory.Lookup(ctx, recipient)
	if err != nil {
		return domain.EncryptedPayload{}, fmt.Errorf("recipient %q: %w", recipient, err)
	}
	pub, err := crypto.ParsePublicKey(der)
	if err != nil {
		return domain.EncryptedPayload{}, fmt.Errorf("recipient %q: %w", recipient, err)
	}
	return envelope.Encrypt(plaintext, pub)
}

// EncryptFor seals plaintext once for every listed recipient. Every
// recipient id must resolve in the directory; include the sender's own id
// when self-readability is wanted.
func (s *Service) EncryptFor(ctx context.Context, recipients []domain.OwnerID, plaintext []byte) (domain.MultiRecipientEncryptedPayload, error) {
	ders, err := s.directory.LookupMany(ctx, recipients)
	if err != nil {
		return domain.MultiRecipientEncryptedPayload{}, err
	}

	pubs := make(map[domain.OwnerID]*rsa.PublicKey, len(recipients))
	for _, id := range recipients {
		der, ok := ders[id]
		if !ok {
			return domain.MultiRecipientEncryptedPayload{}, fmt.Errorf("recipient %q: %w", id, domain.ErrNotFound)
		}
		pub, err := crypto.ParsePublicKey(der)
		if err != nil {
			return domain.MultiRecipientEncryptedPayload{}, fmt.Errorf("recipient %q: %w", id, err)
		}
		pubs[id] = pub
	}
	return envelope.EncryptForMany(plaintext, pubs)
}

// Decrypt opens a single-recipient payload with the owner's resident key.
// Fails closed with domain.ErrSessionLocked when no key is resident.
func (s *Service) Decrypt(owner domain.OwnerID, payload domain.EncryptedPayload) ([]byte, error) {
	return s.withSession(owner, func(priv *rsa.PrivateKey) ([]byte, error) {
		return envelope.Decrypt(payload, priv)
	})
}

// DecryptFrom opens a multi-recipient payload as owner. Fails with
// domain.ErrMissingRecipientKey when owner was never a recipient.
func (s *Service) DecryptFrom(owner domain.OwnerID, payload domain.MultiRecipientEncryptedPayload) ([]byte, error) {
	return s.withSession(owner, func(priv *rsa.PrivateKey) ([]byte, error) {
		return envelope.DecryptFromMany(payload, owner, priv)
	})
}
