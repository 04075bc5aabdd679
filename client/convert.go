package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	fixer "github.com/dusanm/fixer-cli"
)

// Convert exchanges amount from one currency into another at the
// current rate. Conversions are the slowest endpoint, so the call
// gets twice the configured timeout.
func (c *Client) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (fixer.ConvertResponse, error) {
	var response fixer.ConvertResponse

	query := url.Values{}
	query.Add("to", to)
	query.Add("from", from)
	query.Add("amount", amount.String())

	body, err := c.get(ctx, "/convert", query, 2*c.timeout)

	if err != nil {
		return response, err
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, fmt.Errorf("decoding convert response: %w", err)
	}

	return response, nil
}
