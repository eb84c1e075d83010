package custody_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notelock/internal/custody"
	"notelock/internal/directory"
	"notelock/internal/domain"
	"notelock/internal/logger"
	"notelock/internal/store"
)

func TestBackup_RoundTripOntoFreshInstallation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)
	owner := domain.OwnerID("mum")

	_, err := svc.Setup(ctx, owner, testPassphrase)
	require.NoError(t, err)

	payload, err := svc.EncryptTo(ctx, owner, []byte("remember the recipe"))
	require.NoError(t, err)

	blob, err := svc.ExportBackup(ctx, owner, testPassphrase)
	require.NoError(t, err)
	assert.NotEmpty(t, blob)

	// A second service with empty stores stands in for a new device.
	fresh := custody.New(store.NewMemoryKeystore(), directory.NewMemoryDirectory(), fastParams(), logger.Discard())
	require.NoError(t, fresh.ImportBackup(ctx, owner, blob, testPassphrase))

	state, err := fresh.Status(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.StateUnlocked, state)

	// The restored key opens payloads made before the backup.
	plaintext, err := fresh.Decrypt(owner, payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("remember the recipe"), plaintext)

	// The public key was re-published on the way in.
	again, err := fresh.EncryptTo(ctx, owner, []byte("still here"))
	require.NoError(t, err)
	plaintext, err = fresh.Decrypt(owner, again)
	require.NoError(t, err)
	assert.Equal(t, []byte("still here"), plaintext)
}

func TestExportBackup_WrongPassphraseRefused(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)
	owner := domain.OwnerID("mum")

	_, err := svc.Setup(ctx, owner, testPassphrase)
	require.NoError(t, err)

	_, err = svc.ExportBackup(ctx, owner, "Wrong-Passphrase-1!")
	require.ErrorIs(t, err, domain.ErrAuthenticationFailed)
}

func TestExportBackup_NotSetup(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.ExportBackup(context.Background(), "nobody", testPassphrase)
	require.ErrorIs(t, err, domain.ErrNotSetup)
}

func TestImportBackup_MalformedBundles(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)
	owner := domain.OwnerID("mum")

	// Not base64 at all.
	err := svc.ImportBackup(ctx, owner, "!!! not base64 !!!", testPassphrase)
	require.ErrorIs(t, err, domain.ErrInvalidBackup)

	// Base64, but not a bundle.
	err = svc.ImportBackup(ctx, owner, "bm90IGpzb24=", testPassphrase)
	require.ErrorIs(t, err, domain.ErrInvalidBackup)

	// A structurally empty bundle.
	err = svc.ImportBackup(ctx, owner, "eyJ2IjoxfQ==", testPassphrase)
	require.ErrorIs(t, err, domain.ErrInvalidBackup)
}

func TestImportBackup_HostileKDFParamsFailClosed(t *testing.T) {
	ctx := context.Background()
	svc, ks, _ := newService(t)
	owner := domain.OwnerID("mum")

	// A well-formed bundle whose wrapped blob carries KDF cost parameters
	// the unwrap path must refuse rather than feed to the KDF.
	hostile := []byte(`{"v":1,"kdf":"argon2id","time":0,"mem_kib":64,"threads":0,"salt":"AAAA","nonce":"AAAAAAAAAAAAAAAA","cipher":"AAAA"}`)
	raw, err := json.Marshal(map[string]any{
		"v": 1,
		"record": domain.WrappedKeyRecord{
			RecordID:   uuid.New(),
			OwnerID:    owner,
			Wrapped:    hostile,
			KeyVersion: 1,
			CreatedAt:  time.Now().UTC(),
		},
	})
	require.NoError(t, err)

	err = svc.ImportBackup(ctx, owner, base64.StdEncoding.EncodeToString(raw), testPassphrase)
	require.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	// Nothing was restored.
	_, err = ks.Get(ctx, owner)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImportBackup_PublishFailureRollsBackFreshInstall(t *testing.T) {
	ctx := context.Background()
	src, _, _ := newService(t)
	owner := domain.OwnerID("mum")

	_, err := src.Setup(ctx, owner, testPassphrase)
	require.NoError(t, err)
	blob, err := src.ExportBackup(ctx, owner, testPassphrase)
	require.NoError(t, err)

	ks := store.NewMemoryKeystore()
	dir := &failingDirectory{directory.NewMemoryDirectory()}
	dst := custody.New(ks, dir, fastParams(), logger.Discard())

	err = dst.ImportBackup(ctx, owner, blob, testPassphrase)
	require.ErrorIs(t, err, domain.ErrCollaboratorUnavailable)

	// No half-published state: the keystore write was compensated.
	_, err = ks.Get(ctx, owner)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	state, err := dst.Status(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.StateUninitialized, state)
}

// toggleDirectory works until fail is set, for rollback paths that need an
// earlier successful publish.
type toggleDirectory struct {
	*directory.MemoryDirectory
	fail bool
}

func (d *toggleDirectory) Publish(ctx context.Context, owner domain.OwnerID, publicKey []byte) error {
	if d.fail {
		return domain.ErrCollaboratorUnavailable
	}
	return d.MemoryDirectory.Publish(ctx, owner, publicKey)
}

func TestImportBackup_PublishFailureKeepsPriorRecord(t *testing.T) {
	ctx := context.Background()
	src, _, _ := newService(t)
	owner := domain.OwnerID("mum")

	_, err := src.Setup(ctx, owner, testPassphrase)
	require.NoError(t, err)
	blob, err := src.ExportBackup(ctx, owner, testPassphrase)
	require.NoError(t, err)

	ks := store.NewMemoryKeystore()
	dir := &toggleDirectory{MemoryDirectory: directory.NewMemoryDirectory()}
	dst := custody.New(ks, dir, fastParams(), logger.Discard())

	_, err = dst.Setup(ctx, owner, newPassphrase)
	require.NoError(t, err)
	before, err := ks.Get(ctx, owner)
	require.NoError(t, err)

	dir.fail = true
	err = dst.ImportBackup(ctx, owner, blob, testPassphrase)
	require.ErrorIs(t, err, domain.ErrCollaboratorUnavailable)

	// The record from the local setup is back in place and its session key
	// is still resident.
	after, err := ks.Get(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	state, err := dst.Status(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.StateUnlocked, state)
}

func TestImportBackup_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)
	owner := domain.OwnerID("mum")

	_, err := svc.Setup(ctx, owner, testPassphrase)
	require.NoError(t, err)
	blob, err := svc.ExportBackup(ctx, owner, testPassphrase)
	require.NoError(t, err)

	fresh := custody.New(store.NewMemoryKeystore(), directory.NewMemoryDirectory(), fastParams(), logger.Discard())
	err = fresh.ImportBackup(ctx, owner, blob, "Wrong-Passphrase-1!")
	require.ErrorIs(t, err, domain.ErrAuthenticationFailed)

	// Nothing was restored.
	state, err := fresh.Status(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.StateUninitialized, state)
}
