package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/walletops/fordefi-cli/cmd/env"
	"github/walletops/fordefi-cli/cmd/transaction"
	"github/walletops/fordefi-cli/cmd/vault"
	"github/walletops/fordefi-cli/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fordefi",
	Short: "Fordefi custodial wallet CLI",
	Long: `fordefi

A command-line client for the Fordefi custodial wallet API.
Creates vaults and submits signed blockchain transactions.
Requires configuration through ENV.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cfg := config.DefaultConfigFromEnv()
	configureLogger(cfg.Logger)

	// attach the subcommands
	rootCmd.AddCommand(
		env.New(cfg),
		vault.New(cfg),
		transaction.New(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}

func configureLogger(cfg config.LoggerConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
