package octopus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nerrad567/octoflux/internal/infrastructure/config"
)

const (
	// defaultTimeout applies when config.Timeout is unset.
	defaultTimeout = 30 * time.Second

	// maxResponseSize caps response bodies read into memory.
	maxResponseSize = 10 << 20 // 10 MB
)

// krakenTokenMutation exchanges account credentials for a Kraken JWT.
const krakenTokenMutation = `mutation krakenTokenAuthentication($email: String!, $password: String!) {
  obtainKrakenToken(input: {email: $email, password: $password}) {
    token
  }
}`

// AuthToken is a Kraken API JWT obtained via Authenticate.
//
// REST endpoints expect the raw token as the Authorization header value,
// without a scheme prefix.
type AuthToken string

// Client talks to the Octopus Energy API.
//
// Authentication is a GraphQL mutation exchanging account credentials for
// a JWT; data retrieval is plain REST with the token in the Authorization
// header. The token is explicit on every call rather than cached in the
// client, so the client itself holds no mutable state.
//
// Thread Safety: all methods are safe for concurrent use from multiple
// goroutines.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the configured API endpoint.
func New(cfg config.OctopusConfig) *Client {
	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// graphQLRequest is the wire shape of a GraphQL POST body.
type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// krakenTokenResponse decodes the parts of the obtainKrakenToken reply
// that matter: the token on success, the error messages on failure.
type krakenTokenResponse struct {
	Data struct {
		ObtainKrakenToken struct {
			Token string `json:"token"`
		} `json:"obtainKrakenToken"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Authenticate exchanges account credentials for an API token.
//
// It posts the obtainKrakenToken mutation to the GraphQL endpoint. Success
// is an HTTP 200 with no GraphQL errors and a non-empty token.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - email: Account email address
//   - password: Account password
//
// Returns:
//   - AuthToken: JWT for subsequent REST calls
//   - error: Wrapping ErrAuthFailed if the exchange is rejected
func (c *Client) Authenticate(ctx context.Context, email, password string) (AuthToken, error) {
	body, err := json.Marshal(graphQLRequest{
		Query: krakenTokenMutation,
		Variables: map[string]string{
			"email":    email,
			"password": password,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %w", ErrAuthFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/graphql/", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %w", ErrAuthFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %w", ErrAuthFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: HTTP %d", ErrAuthFailed, resp.StatusCode)
	}

	var decoded krakenTokenResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", fmt.Errorf("%w: decoding response: %w", ErrAuthFailed, err)
	}
	if len(decoded.Errors) > 0 {
		return "", fmt.Errorf("%w: %s", ErrAuthFailed, decoded.Errors[0].Message)
	}
	if decoded.Data.ObtainKrakenToken.Token == "" {
		return "", fmt.Errorf("%w: no token in response", ErrAuthFailed)
	}

	return AuthToken(decoded.Data.ObtainKrakenToken.Token), nil
}

// get performs an authenticated GET against a REST path and decodes the
// JSON response into out.
func (c *Client) get(ctx context.Context, token AuthToken, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: creating request: %w", ErrRequestFailed, err)
	}
	// Kraken expects the bare token, no scheme prefix.
	req.Header.Set("Authorization", string(token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrRequestFailed, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: GET %s: reading response: %w", ErrRequestFailed, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s: HTTP %d", ErrRequestFailed, path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: GET %s: decoding response: %w", ErrRequestFailed, path, err)
	}

	return nil
}
