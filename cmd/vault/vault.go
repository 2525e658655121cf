package vault

import (
	"github.com/spf13/cobra"
	"github/walletops/fordefi-cli/internal/config"
)

// New returns the vault subcommand group
func New(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage Fordefi vaults",
	}

	cmd.AddCommand(
		newCreate(cfg),
	)

	return cmd
}
