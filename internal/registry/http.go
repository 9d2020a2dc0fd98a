package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"clasp/internal/domain"
)

// HTTPClient talks to a registryd server. All requests are JSON over HTTP
// and accept a context for cancellation and deadlines; non-2xx statuses come
// back as errors carrying the method, path, and status text.
type HTTPClient struct {
	Base string
	HTTP *http.Client
}

// NewHTTPClient returns a client for the registry at base, using
// http.DefaultClient unless httpClient is non-nil.
func NewHTTPClient(base string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{Base: base, HTTP: httpClient}
}

// Lookup fetches the registered signing key for owner. A 404 maps to
// (zero, false, nil): unregistered is an answer, not a transport failure.
func (c *HTTPClient) Lookup(ctx context.Context, owner domain.PartyRef) (domain.Ed25519Public, bool, error) {
	path := "/keys/" + url.PathEscape(owner.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return domain.Ed25519Public{}, false, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.Ed25519Public{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Ed25519Public{}, false, nil
	}
	if resp.StatusCode/100 != 2 {
		return domain.Ed25519Public{}, false, fmt.Errorf("registry get %s: %s", path, resp.Status)
	}
	var rec domain.KeyRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return domain.Ed25519Public{}, false, err
	}
	return rec.SigningKey, true, nil
}

// Register posts a registration request.
func (c *HTTPClient) Register(ctx context.Context, regReq domain.RegisterRequest) error {
	return c.post(ctx, "/register", regReq)
}

func (c *HTTPClient) post(ctx context.Context, path string, in any) error {
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
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("registry post %s: %s", path, resp.Status)
	}
	return nil
}

// Compile-time assertion that HTTPClient implements domain.IdentityRegistry.
var _ domain.IdentityRegistry = (*HTTPClient)(nil)
