package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"notelock/internal/domain"
)

// HTTPDirectory is a JSON-over-HTTP directory client.
//
// Endpoints:
//
//	POST /keys/{owner}        {"public_key": <b64 DER>}
//	GET  /keys/{owner}        {"public_key": <b64 DER>}
//	POST /keys:lookup         {"owners": [...]} -> {"keys": {owner: <b64 DER>}}
type HTTPDirectory struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the directory at base.
func NewHTTP(base string, client *http.Client) *HTTPDirectory {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPDirectory{Base: base, HTTP: client}
}

type keyBody struct {
	PublicKey []byte `json:"public_key"`
}

type lookupManyRequest struct {
	Owners []domain.OwnerID `json:"owners"`
}

type lookupManyResponse struct {
	Keys map[domain.OwnerID][]byte `json:"keys"`
}

// Publish registers or replaces the owner's public key.
func (c *HTTPDirectory) Publish(ctx context.Context, owner domain.OwnerID, publicKey []byte) error {
	return c.post(ctx, "/keys/"+url.PathEscape(owner.String()), keyBody{PublicKey: publicKey}, nil)
}

// Lookup fetches one owner's public key, or domain.ErrNotFound.
func (c *HTTPDirectory) Lookup(ctx context.Context, owner domain.OwnerID) ([]byte, error) {
	var out keyBody
	if err := c.getJSON(ctx, "/keys/"+url.PathEscape(owner.String()), &out); err != nil {
		return nil, err
	}
	return out.PublicKey, nil
}

// LookupMany fetches keys for several owners in one round trip. Owners the
// directory does not know are absent from the result map.
func (c *HTTPDirectory) LookupMany(ctx context.Context, owners []domain.OwnerID) (map[domain.OwnerID][]byte, error) {
	var out lookupManyResponse
	if err := c.post(ctx, "/keys:lookup", lookupManyRequest{Owners: owners}, &out); err != nil {
		return nil, err
	}
	if out.Keys == nil {
		out.Keys = map[domain.OwnerID][]byte{}
	}
	return out.Keys, nil
}

func (c *HTTPDirectory) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()
	if err := statusErr(resp, path); err != nil {
		return err
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *HTTPDirectory) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()
	if err := statusErr(resp, path); err != nil {
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusErr(resp *http.Response, path string) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode/100 != 2:
		return fmt.Errorf("%w: directory %s: %s", domain.ErrCollaboratorUnavailable, path, resp.Status)
	}
	return nil
}

// Compile-time assertion that HTTPDirectory implements domain.Directory.
var _ domain.Directory = (*HTTPDirectory)(nil)
