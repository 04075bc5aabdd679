package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	fixer "github.com/dusanm/fixer-cli"
	"github.com/dusanm/fixer-cli/client"
)

var (
	rootCmd = &cobra.Command{
		Use:     "fixer-cli",
		Short:   "Interactive currency-exchange client for the fixer API",
		Version: "v1.0.0",
	}
	envFile string
)

var ErrMissingAPIKey = errors.New("FIXER_API_KEY is not set")

type (
	Config struct {
		Ctx       context.Context
		Exchanger fixer.Exchanger
	}
)

func loadConfig(config *Config) error {
	absolutePath, _ := filepath.Abs(envFile)

	// Missing .env is fine, the key may come from the environment.
	_ = godotenv.Load(absolutePath)

	viper.SetEnvPrefix("FIXER")
	viper.AutomaticEnv()

	if config.Exchanger != nil {
		return nil
	}

	apiKey := viper.GetString("api_key")

	if apiKey == "" {
		return ErrMissingAPIKey
	}

	config.Exchanger = client.New(client.Config{
		BaseURL: viper.GetString("base_url"),
		APIKey:  apiKey,
		Timeout: time.Duration(viper.GetInt("timeout")) * time.Second,
	})

	return nil
}

func Execute(config *Config) error {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "./.env", "Path to the .env file with the API key")
	cobra.OnInitialize()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadConfig(config)
	}

	// Bare invocation drops into the menu.
	rootCmd.RunE = runMenu(config)

	rootCmd.AddCommand(menu(config), symbols(config), convert(config), rates(config))

	return rootCmd.Execute()
}
