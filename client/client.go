package client

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	FixerAPIURL    = "https://api.apilayer.com/fixer"
	DefaultTimeout = time.Duration(5) * time.Second
)

var (
	ErrUnAuthorized    = errors.New("unauthorized, API key is missing or invalid")
	ErrAPILimitReached = errors.New("API limit reached")
	ErrClient          = errors.New("client error")
	ErrServer          = errors.New("server error")
	ErrUnknown         = errors.New("unknown error")
)

type (
	Config struct {
		BaseURL string
		APIKey  string
		Timeout time.Duration
	}

	// Client talks to the fixer currency-exchange API. One blocking
	// GET per call, the API key sent as the apikey header.
	Client struct {
		baseURL string
		apiKey  string
		timeout time.Duration
		http    *http.Client
	}
)

func New(config Config) *Client {
	baseURL := config.BaseURL

	if baseURL == "" {
		baseURL = FixerAPIURL
	}

	timeout := config.Timeout

	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  config.APIKey,
		timeout: timeout,
		http:    &http.Client{},
	}
}

func handleHTTPStatusCodeError(res *http.Response) error {
	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return ErrUnAuthorized
	case res.StatusCode == http.StatusTooManyRequests:
		return ErrAPILimitReached
	case res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError:
		return ErrClient
	case res.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	}

	return ErrUnknown
}

// get performs the request against path and returns the raw body.
// The timeout bounds the whole call, including reading the body.
func (c *Client) get(ctx context.Context, path string, query url.Values, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("apikey", c.apiKey)

	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	res, err := c.http.Do(req)

	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}

	defer res.Body.Close()

	if err := handleHTTPStatusCodeError(res); err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}

	body, err := ioutil.ReadAll(res.Body)

	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}

	return body, nil
}
