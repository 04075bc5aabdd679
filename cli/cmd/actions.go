package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dusanm/fixer-cli/console"
)

// One-shot variants of the menu actions, for scripting.

func newConsole(config *Config, cmd *cobra.Command) console.Console {
	return console.Console{
		Exchanger: config.Exchanger,
		Out:       cmd.OutOrStdout(),
	}
}

func symbols(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the currency symbols the API supports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newConsole(config, cmd).Symbols(config.Ctx)
		},
	}
}

func convert(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <from> <to> <amount>",
		Short: "Convert an amount between two currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[2])

			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[2], err)
			}

			return newConsole(config, cmd).Convert(
				config.Ctx,
				strings.ToUpper(args[0]),
				strings.ToUpper(args[1]),
				amount,
			)
		},
	}
}

func rates(config *Config) *cobra.Command {
	var base string
	var symbols []string

	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Show real-time exchange rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, symbol := range symbols {
				symbols[i] = strings.ToUpper(strings.TrimSpace(symbol))
			}

			return newConsole(config, cmd).Rates(config.Ctx, strings.ToUpper(base), symbols)
		},
	}

	ratesCmd.Flags().StringVarP(&base, "base", "b", "", "Base currency code")
	ratesCmd.Flags().StringSliceVarP(&symbols, "symbols", "s", nil, "Limit output to these currency codes")

	return ratesCmd
}
