package directory_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notelock/internal/directory"
	"notelock/internal/domain"
)

// fakeDirectoryServer speaks the directory wire protocol over httptest.
type fakeDirectoryServer struct {
	mu   sync.Mutex
	keys map[domain.OwnerID][]byte
}

func newFakeDirectoryServer() *fakeDirectoryServer {
	return &fakeDirectoryServer{keys: make(map[domain.OwnerID][]byte)}
}

func (f *fakeDirectoryServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/keys:lookup":
			var req struct {
				Owners []domain.OwnerID `json:"owners"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			out := map[domain.OwnerID][]byte{}
			for _, owner := range req.Owners {
				if key, ok := f.keys[owner]; ok {
					out[owner] = key
				}
			}
			json.NewEncoder(w).Encode(map[string]any{"keys": out})
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/keys/"):
			owner := strings.TrimPrefix(r.URL.Path, "/keys/")
			var body struct {
				PublicKey []byte `json:"public_key"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			f.keys[domain.OwnerID(owner)] = body.PublicKey
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/keys/"):
			owner := strings.TrimPrefix(r.URL.Path, "/keys/")
			f.mu.Lock()
			key, ok := f.keys[domain.OwnerID(owner)]
			f.mu.Unlock()
			if !ok {
				http.NotFound(w, r)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{"public_key": key})
		default:
			http.NotFound(w, r)
		}
	})
}

func TestHTTPDirectory_PublishLookup(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(newFakeDirectoryServer().handler())
	defer srv.Close()

	client := directory.NewHTTP(srv.URL, srv.Client())
	require.NoError(t, client.Publish(ctx, "mum", []byte("mum-der")))

	got, err := client.Lookup(ctx, "mum")
	require.NoError(t, err)
	assert.Equal(t, []byte("mum-der"), got)
}

func TestHTTPDirectory_LookupUnknownOwner(t *testing.T) {
	srv := httptest.NewServer(newFakeDirectoryServer().handler())
	defer srv.Close()

	client := directory.NewHTTP(srv.URL, srv.Client())
	_, err := client.Lookup(context.Background(), "nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHTTPDirectory_LookupMany(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(newFakeDirectoryServer().handler())
	defer srv.Close()

	client := directory.NewHTTP(srv.URL, srv.Client())
	require.NoError(t, client.Publish(ctx, "mum", []byte("mum-der")))
	require.NoError(t, client.Publish(ctx, "dad", []byte("dad-der")))

	keys, err := client.LookupMany(ctx, []domain.OwnerID{"mum", "dad", "stranger"})
	require.NoError(t, err)
	assert.Equal(t, map[domain.OwnerID][]byte{
		"mum": []byte("mum-der"),
		"dad": []byte("dad-der"),
	}, keys)
}

func TestHTTPDirectory_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := directory.NewHTTP(srv.URL, srv.Client())
	_, err := client.Lookup(context.Background(), "mum")
	require.ErrorIs(t, err, domain.ErrCollaboratorUnavailable)
}

func TestHTTPDirectory_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	client := directory.NewHTTP(srv.URL, nil)
	err := client.Publish(context.Background(), "mum", []byte("der"))
	require.ErrorIs(t, err, domain.ErrCollaboratorUnavailable)
}
