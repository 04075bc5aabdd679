package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	fixer "github.com/dusanm/fixer-cli"
)

// Latest fetches real-time rates. An empty base falls back to the
// API default, and an empty symbols list returns every quoted
// currency; neither is sent as a query parameter in that case.
func (c *Client) Latest(ctx context.Context, base string, symbols []string) (fixer.LatestResponse, error) {
	var response fixer.LatestResponse

	query := url.Values{}

	if len(symbols) > 0 {
		query.Add("symbols", strings.Join(symbols, ","))
	}

	if base != "" {
		query.Add("base", base)
	}

	body, err := c.get(ctx, "/latest", query, c.timeout)

	if err != nil {
		return response, err
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, fmt.Errorf("decoding latest rates response: %w", err)
	}

	return response, nil
}
