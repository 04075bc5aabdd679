package console

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	fixer "github.com/dusanm/fixer-cli"
)

// Console renders the result of each action to Out. API-level
// failures (success=false) are printed, not returned; only transport
// errors propagate to the caller.
type Console struct {
	Exchanger fixer.Exchanger
	Out       io.Writer
}

func (c Console) Symbols(ctx context.Context) error {
	response, err := c.Exchanger.Symbols(ctx)

	if err != nil {
		return err
	}

	if !response.Success {
		c.failure("Error while accessing symbols", response.Status)
		return nil
	}

	codes := make([]string, 0, len(response.Symbols))
	for code := range response.Symbols {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	for _, code := range codes {
		fmt.Fprintf(c.Out, "%s: %s\n", code, response.Symbols[code])
	}

	return nil
}

func (c Console) Convert(ctx context.Context, from, to string, amount decimal.Decimal) error {
	response, err := c.Exchanger.Convert(ctx, from, to, amount)

	if err != nil {
		return err
	}

	if !response.Success {
		message := response.FailureMessage()

		if message == "" {
			message = "An unknown error occurred"
		}

		fmt.Fprintf(c.Out, "Error while converting: %s\n", message)

		return nil
	}

	fmt.Fprintf(
		c.Out,
		"\n%s %s ----> %s %s\n",
		response.Query.Amount,
		response.Query.From,
		response.Result,
		response.Query.To,
	)

	return nil
}

func (c Console) Rates(ctx context.Context, base string, symbols []string) error {
	response, err := c.Exchanger.Latest(ctx, base, symbols)

	if err != nil {
		return err
	}

	if !response.Success {
		c.failure("Error while accessing rates", response.Status)
		return nil
	}

	fmt.Fprintf(c.Out, "\nBase: %s\tDate: %s\n", response.Base, response.Date)
	fmt.Fprintln(c.Out, "Rates:")

	codes := make([]string, 0, len(response.Rates))
	for code := range response.Rates {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	for _, code := range codes {
		fmt.Fprintf(c.Out, "%s: %s\n", code, response.Rates[code])
	}

	return nil
}

func (c Console) failure(fallback string, status fixer.Status) {
	if message := status.FailureMessage(); message != "" {
		fmt.Fprintf(c.Out, "%s: %s\n", fallback, message)
		return
	}

	fmt.Fprintln(c.Out, fallback)
}
