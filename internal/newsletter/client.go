package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Status string

const (
	StatusSubscribed        Status = "subscribed"
	StatusAlreadySubscribed Status = "already_subscribed"
)

// Service triggers the provider's double opt-in flow for an address. The
// provider sends the confirmation mail; this side only reports whether the
// address was accepted or already known.
type Service interface {
	Subscribe(ctx context.Context, email string) (Status, error)
}

// Client talks to a Buttondown-style subscribers API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type subscribeRequest struct {
	EmailAddress string `json:"email_address"`
}

func (c *Client) Subscribe(ctx context.Context, email string) (Status, error) {
	if c.apiKey == "" {
		return "", errors.New("newsletter: api key not configured")
	}

	body, err := json.Marshal(subscribeRequest{EmailAddress: email})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/subscribers", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return StatusSubscribed, nil
	// The provider rejects addresses it already knows; that is a normal
	// outcome for a public signup form, not a failure.
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusConflict:
		return StatusAlreadySubscribed, nil
	default:
		return "", fmt.Errorf("newsletter: provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
}
