package azuredevops

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

const (
	apiVersion          = "7.0"
	extensionAPIVersion = "7.1-preview.1"
	defaultBaseURL      = "https://dev.azure.com/"
	extensionBaseURL    = "https://extmgmt.dev.azure.com/"
	continuationHeader  = "x-ms-continuationtoken"
)

// TokenSource hands out the PAT used for Basic auth. Refresh is called at
// most once per request, after the host rejected the current token.
type TokenSource interface {
	Token() string
	Refresh() (string, error)
}

// Client is a thin Azure DevOps REST client.
type Client struct {
	baseURL    string
	org        string
	tokens     TokenSource
	httpClient *http.Client
}

// NewClient creates a client for an organization name or URL.
func NewClient(organization string, tokens TokenSource) *Client {
	baseURL := normalizeOrgURL(organization)

	return &Client{
		baseURL: baseURL,
		org:     extractOrgName(baseURL),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Organization returns the organization name.
func (c *Client) Organization() string {
	return c.org
}

// BaseURL returns the base URL of the Azure DevOps organization
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ExtensionBaseURL returns the root of the extension management service. On
// dev.azure.com it lives on its own host; elsewhere it shares the collection URL.
func (c *Client) ExtensionBaseURL() string {
	if strings.HasPrefix(c.baseURL, defaultBaseURL) {
		return extensionBaseURL + c.org
	}
	return c.baseURL
}

func normalizeOrgURL(organization string) string {
	org := strings.TrimSuffix(organization, "/")
	if !strings.HasPrefix(org, "https://") && !strings.HasPrefix(org, "http://") {
		org = defaultBaseURL + org
	}
	return org
}

func extractOrgName(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return u.Host
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	resp, _, err := c.doRequestWithHeaders(ctx, method, endpoint, body)
	return resp, err
}

// doRequestWithHeaders sends a JSON request. endpoint is either a path below
// the organization URL or an absolute URL.
func (c *Client) doRequestWithHeaders(
	ctx context.Context,
	method, endpoint string,
	body any,
) ([]byte, http.Header, error) {
	var payload []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = jsonBody
	}

	target := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		target = c.baseURL + endpoint
	}

	respBody, headers, status, err := c.send(ctx, method, target, payload, c.tokens.Token())
	if err != nil {
		return nil, nil, err
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		token, refreshErr := c.tokens.Refresh()
		if refreshErr != nil {
			return nil, nil, fmt.Errorf("%w: token refresh failed: %w", entities.ErrAuth, refreshErr)
		}
		logger.Debugf("Retrying %s %s with a refreshed token", method, endpoint)

		respBody, headers, status, err = c.send(ctx, method, target, payload, token)
		if err != nil {
			return nil, nil, err
		}
	}

	if statusErr := classifyStatus(status, respBody); statusErr != nil {
		return nil, nil, statusErr
	}

	return respBody, headers, nil
}

func (c *Client) send(
	ctx context.Context,
	method, target string,
	payload []byte,
	token string,
) ([]byte, http.Header, int, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	// Basic auth with an empty user and the PAT as password
	auth := base64.StdEncoding.EncodeToString([]byte(":" + token))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, nil, 0, err
		}
		return nil, nil, 0, fmt.Errorf("%w: request failed: %w", entities.ErrTransient, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("%w: failed to read response: %w", entities.ErrTransient, err)
	}

	return respBody, resp.Header, resp.StatusCode, nil
}

func classifyStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: API error (status %d)", entities.ErrAuth, status)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: API error (status %d): %s", entities.ErrNotFound, status, string(body))
	default:
		return fmt.Errorf("%w: API error (status %d): %s", entities.ErrTransient, status, string(body))
	}
}
