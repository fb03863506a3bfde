// Package email checks email deliverability against the hunter.io
// email-verifier API.
package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.hunter.io"

// Verifier reports whether an email address is deliverable.
type Verifier interface {
	Deliverable(ctx context.Context, email string) (bool, error)
}

// HunterClient calls the hunter.io email-verifier endpoint. Verification
// is a single synchronous request with no retries; callers treat any
// transport failure as a request failure (fail closed).
type HunterClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewHunterClient returns a Verifier backed by hunter.io.
func NewHunterClient(apiKey string) *HunterClient {
	return &HunterClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewHunterClientWithBaseURL is used by tests to point the client at a stub server.
func NewHunterClientWithBaseURL(apiKey, baseURL string) *HunterClient {
	c := NewHunterClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Deliverable returns true only when hunter.io reports the address as
// "deliverable". Any other verdict, including "risky", counts as not
// deliverable.
func (h *HunterClient) Deliverable(ctx context.Context, email string) (bool, error) {
	endpoint := fmt.Sprintf("%s/v2/email-verifier?email=%s&api_key=%s",
		h.baseURL, url.QueryEscape(email), url.QueryEscape(h.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build email verifier request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("email verifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("email verifier returned status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Result string `json:"result"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decode email verifier response: %w", err)
	}

	return body.Data.Result == "deliverable", nil
}
