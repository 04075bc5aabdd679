package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dusanm/fixer-cli/console"
)

func runMenu(config *Config) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c := console.Console{
			Exchanger: config.Exchanger,
			Out:       cmd.OutOrStdout(),
		}

		return console.NewMenu(c, cmd.InOrStdin()).Run(config.Ctx)
	}
}

func menu(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive numbered menu",
		RunE:  runMenu(config),
	}
}
