package env

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/walletops/fordefi-cli/internal/config"
)

// New returns the env subcommand, which prints the resolved
// configuration with the access token redacted
func New(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the resolved configuration as JSON",
		Run: func(_ *cobra.Command, _ []string) {
			out, err := json.MarshalIndent(cfg.Redacted(), "", "  ")
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to marshal config")
			}

			fmt.Println(string(out))
		},
	}
}
