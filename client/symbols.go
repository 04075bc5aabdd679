package client

import (
	"context"
	"encoding/json"
	"fmt"

	fixer "github.com/dusanm/fixer-cli"
)

// Symbols lists every currency code the API supports with its
// human-readable description.
func (c *Client) Symbols(ctx context.Context) (fixer.SymbolsResponse, error) {
	var response fixer.SymbolsResponse

	body, err := c.get(ctx, "/symbols", nil, c.timeout)

	if err != nil {
		return response, err
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, fmt.Errorf("decoding symbols response: %w", err)
	}

	return response, nil
}
