package fixer

import (
	"context"

	"github.com/shopspring/decimal"
)

type (
	// Exchanger is the set of fixer API operations the CLI works with.
	Exchanger interface {
		Symbols(ctx context.Context) (SymbolsResponse, error)
		Convert(ctx context.Context, from, to string, amount decimal.Decimal) (ConvertResponse, error)
		Latest(ctx context.Context, base string, symbols []string) (LatestResponse, error)
	}
)
