package idealista

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrMissingCredentials indicates an incomplete credential pair; no
	// network call is attempted in that case.
	ErrMissingCredentials = errors.New("missing API key or secret")
	// ErrNoAccessToken indicates a token endpoint response without the
	// expected access_token field.
	ErrNoAccessToken = errors.New("no access_token found in response")
)

// Client issues authenticated requests against the provider API
type Client struct {
	apiKey     string
	apiSecret  string
	userAgent  string
	httpClient *http.Client

	// Endpoint overrides for tests; zero values mean the real provider.
	TokenURL string
}

// NewClient creates a new provider API client
func NewClient(apiKey, apiSecret, userAgent string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		userAgent:  userAgent,
		httpClient: httpClient,
		TokenURL:   DefaultTokenURL,
	}
}

// Token performs the client-credentials exchange and returns a bearer token.
// A single failed exchange is fatal for the run; there is no retry.
func (c *Client) Token(ctx context.Context) (string, error) {
	if c.apiKey == "" || c.apiSecret == "" {
		return "", ErrMissingCredentials
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", ErrNoAccessToken
	}

	return token.AccessToken, nil
}

// Search issues one authenticated search request against the prepared query
// URL and returns the raw response body.
func (c *Client) Search(ctx context.Context, searchURL, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, searchURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to run search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read search response: %w", err)
	}

	return string(body), nil
}
