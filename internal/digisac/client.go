package digisac

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

	"github.com/clinicwave/agenda-ops/pkg/logging"
)

const (
	defaultTimeout = 15 * time.Second
	messagesPath   = "/api/v1/messages"
)

// Config controls how the Digisac client behaves.
type Config struct {
	BaseURL    string
	APIToken   string
	ServiceID  string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client sends outbound WhatsApp messages through the Digisac API. Delivery
// guarantees are the provider's concern; the client reports only whether the
// API accepted the request. It never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	serviceID  string
	logger     *logging.Logger
}

// New creates a configured Digisac client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("digisac: base URL is required")
	}
	if strings.TrimSpace(cfg.APIToken) == "" {
		return nil, errors.New("digisac: API token is required")
	}
	if strings.TrimSpace(cfg.ServiceID) == "" {
		return nil, errors.New("digisac: service id is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiToken:   cfg.APIToken,
		serviceID:  cfg.ServiceID,
		logger:     logger,
	}, nil
}

type sendPayload struct {
	Text           string `json:"text"`
	Number         string `json:"number"`
	ServiceID      string `json:"serviceId"`
	Origin         string `json:"origin"`
	DontOpenTicket bool   `json:"dontOpenticket"`
}

// SendMessage posts one text message to the given number (country-code digits
// only, e.g. "5532999999999"). HTTP 200/201/202 count as accepted and the raw
// response body is returned; any other status or transport failure is an
// error carrying the provider's reply text.
func (c *Client) SendMessage(ctx context.Context, number, text string) (string, error) {
	body, err := json.Marshal(sendPayload{
		Text:           text,
		Number:         number,
		ServiceID:      c.serviceID,
		Origin:         "bot",
		DontOpenTicket: true,
	})
	if err != nil {
		return "", fmt.Errorf("digisac: marshal send payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("digisac: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("digisac: send to %s: %w", number, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("digisac: read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return string(respBody), nil
	default:
		return "", fmt.Errorf("digisac: send to %s rejected with status %d: %s",
			number, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
}
