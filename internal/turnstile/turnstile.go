package turnstile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	SiteverifyEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"
	timeout            = 5 * time.Second
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client verifies Turnstile tokens against Cloudflare's siteverify API.
type Client struct {
	SecretKey  string
	Endpoint   string
	HTTPClient HTTPClient
}

func NewClient(secretKey string, httpClient HTTPClient) (*Client, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("turnstile secret key cannot be empty")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		SecretKey:  secretKey,
		Endpoint:   SiteverifyEndpoint,
		HTTPClient: httpClient,
	}, nil
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (c *Client) Verify(ctx context.Context, token string) (bool, error) {
	formData := url.Values{
		"secret":   {c.SecretKey},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(formData.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to create siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Request failed to verify challenge token")
		return false, fmt.Errorf("failed to call siteverify api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.WithField("status_code", resp.StatusCode).Error("Unexpected status code from siteverify")
		return false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var verifyResp siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verifyResp); err != nil {
		logrus.WithError(err).Error("Failed to decode siteverify response")
		return false, fmt.Errorf("failed to decode siteverify response: %w", err)
	}

	if !verifyResp.Success {
		logrus.WithField("error_codes", verifyResp.ErrorCodes).Warn("Challenge token rejected")
	}

	return verifyResp.Success, nil
}
