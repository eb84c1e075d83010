package custody

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"notelock/internal/crypto"
	"notelock/internal/domain"
	"notelock/internal/keywrap"
	"notelock/internal/logger"
	"notelock/internal/util/memzero"
)

// Service implements domain.Custody over a Persistent Keystore and a
// Directory Service. Construct one per process and share it.
type Service struct {
	keystore  domain.Keystore
	directory domain.Directory
	params    keywrap.Params
	log       *logger.Logger

	sessionMu sync.RWMutex
	sessions  map[domain.OwnerID]*session

	opMu sync.Mutex
	ops  map[domain.OwnerID]*sync.Mutex
}

// session is the resident unlocked key for one owner. The DER copy exists so
// Lock can wipe something; the parsed key is what decrypts.
type session struct {
	der  []byte
	priv *rsa.PrivateKey
}

// New returns a custody service using the given collaborators and KDF cost.
func New(keystore domain.Keystore, directory domain.Directory, params keywrap.Params, log *logger.Logger) *Service {
	return &Service{
		keystore:  keystore,
		directory: directory,
		params:    params,
		log:       log,
		sessions:  make(map[domain.OwnerID]*session),
		ops:       make(map[domain.OwnerID]*sync.Mutex),
	}
}

// ownerLock returns the per-owner mutex serializing state-changing calls.
func (s *Service) ownerLock(owner domain.OwnerID) *sync.Mutex {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	mu, ok := s.ops[owner]
	if !ok {
		mu = &sync.Mutex{}
		s.ops[owner] = mu
	}
	return mu
}

// Setup generates a key pair for owner, wraps it under passphrase, persists
// the record, publishes the public key, and leaves the session unlocked.
// Valid only when no record exists yet.
//
// The keystore write and directory publish must not leave a half-published
// state: a publish failure rolls the keystore write back.
func (s *Service) Setup(ctx context.Context, owner domain.OwnerID, passphrase string) (domain.Fingerprint, error) {
	mu := s.ownerLock(owner)
	mu.Lock()
	defer mu.Unlock()

	// Policy check first so a rejected passphrase has no side effects.
	if report := keywrap.ValidatePassphrase(passphrase); !report.Valid {
		return "", fmt.Errorf("%w: %s", domain.ErrWeakPassphrase, strings.Join(report.Violations, ", "))
	}

	if _, err := s.keystore.Get(ctx, owner); err == nil {
		return "", domain.ErrAlreadySetup
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	pair, err := crypto.GenerateKeyPair()
	if err != nil {
		return "", err
	}
	wrapped, err := keywrap.Wrap(pair.Private, passphrase, s.params)
	if err != nil {
		return "", err
	}

	record := domain.WrappedKeyRecord{
		RecordID:   uuid.New(),
		OwnerID:    owner,
		Wrapped:    wrapped,
		KeyVersion: 1,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.keystore.Put(ctx, record); err != nil {
		return "", err
	}

	pubDER, err := crypto.MarshalPublicKey(pair.Public)
	if err != nil {
		return "", err
	}
	if err := s.directory.Publish(ctx, owner, pubDER); err != nil {
		if delErr := s.keystore.Delete(ctx, owner); delErr != nil {
			s.log.Error("setup rollback failed, keystore record may be orphaned",
				"owner", owner, "error", delErr.Error())
		}
		return "", err
	}

	s.putSession(owner, pair.Private)
	s.log.Info("key pair set up", "owner", owner, "key_version", record.KeyVersion)
	return domain.Fingerprint(crypto.Fingerprint(pubDER)), nil
}

// Unlock loads the wrapped record and makes the private key resident.
// A wrong passphrase surfaces domain.ErrAuthenticationFailed and changes
// nothing, persisted or resident.
func (s *Service) Unlock(ctx context.Context, owner domain.OwnerID, passphrase string) error {
	mu := s.ownerLock(owner)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.keystore.Get(ctx, owner)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotSetup
	}
	if err != nil {
		return err
	}

	priv, err := keywrap.Unwrap(record.Wrapped, passphrase)
	if err != nil {
		s.log.Warn("unlock rejected", "owner", owner)
		return err
	}

	s.putSession(owner, priv)
	s.log.Info("session unlocked", "owner", owner, "key_version", record.KeyVersion)
	return nil
}

// Lock synchronously wipes the resident private key. Idempotent; a no-op
// when the owner is already locked.
func (s *Service) Lock(owner domain.OwnerID) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	sess, ok := s.sessions[owner]
	if !ok {
		return
	}
	memzero.Zero(sess.der)
	sess.priv = nil
	delete(s.sessions, owner)
	s.log.Info("session locked", "owner", owner)
}

// ChangePassphrase re-wraps the private key under newPassphrase and bumps
// the record's key version. The key pair itself is unchanged, so existing
// payloads stay decryptable. A resident session key, if any, is retained.
func (s *Service) ChangePassphrase(ctx context.Context, owner domain.OwnerID, oldPassphrase, newPassphrase string) error {
	mu := s.ownerLock(owner)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.keystore.Get(ctx, owner)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotSetup
	}
	if err != nil {
		return err
	}

	priv, err := keywrap.Unwrap(record.Wrapped, oldPassphrase)
	if err != nil {
		return err
	}

	if report := keywrap.ValidatePassphrase(newPassphrase); !report.Valid {
		return fmt.Errorf("%w: %s", domain.ErrWeakPassphrase, strings.Join(report.Violations, ", "))
	}

	wrapped, err := keywrap.Wrap(priv, newPassphrase, s.params)
	if err != nil {
		return err
	}

	record.Wrapped = wrapped
	record.KeyVersion++
	if err := s.keystore.Put(ctx, record); err != nil {
		return err
	}

	s.log.Info("passphrase changed", "owner", owner, "key_version", record.KeyVersion)
	return nil
}

// Status derives the owner's custody state. StateError means the keystore
// could not be consulted; a UI should offer "try again later" rather than a
// passphrase prompt.
func (s *Service) Status(ctx context.Context, owner domain.OwnerID) (domain.SessionState, error) {
	s.sessionMu.RLock()
	_, unlocked := s.sessions[owner]
	s.sessionMu.RUnlock()
	if unlocked {
		return domain.StateUnlocked, nil
	}

	_, err := s.keystore.Get(ctx, owner)
	switch {
	case err == nil:
		return domain.StateLocked, nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.StateUninitialized, nil
	default:
		return domain.StateError, err
	}
}

// putSession makes priv resident for owner, replacing any previous key.
func (s *Service) putSession(owner domain.OwnerID, priv *rsa.PrivateKey) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	if old, ok := s.sessions[owner]; ok {
		memzero.Zero(old.der)
	}
	s.sessions[owner] = &session{
		der:  crypto.MarshalPrivateKey(priv),
		priv: priv,
	}
}

// withSession runs fn with the resident private key while holding a read
// lock, so Lock cannot wipe the key mid-decrypt. Fails closed when locked.
func (s *Service) withSession(owner domain.OwnerID, fn func(priv *rsa.PrivateKey) ([]byte, error)) ([]byte, error) {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()

	sess, ok := s.sessions[owner]
	if !ok {
		return nil, domain.ErrSessionLocked
	}
	return fn(sess.priv)
}

// Compile-time assertion that Service implements domain.Custody.
var _ domain.Custody = (*Service)(nil)
