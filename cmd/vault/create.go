package vault

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github/walletops/fordefi-cli/internal/config"
	"github/walletops/fordefi-cli/internal/fordefi"
)

func newCreate(cfg config.Config) *cobra.Command {
	var vaultType string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new vault",
		Long: `Create a new vault.

An EVM vault holds a single address usable across all EVM-compatible
chains; the chain is chosen per transaction, not per vault.`,
		Example: `  fordefi vault create treasury-1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return runCreate(cmd.Context(), cfg, args[0], vaultType)
		},
	}

	cmd.Flags().StringVar(&vaultType, "type", fordefi.VaultTypeEVM, "vault type")

	return cmd
}

func runCreate(ctx context.Context, cfg config.Config, name string, vaultType string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := fordefi.NewClient(cfg, nil)

	vault, err := client.CreateVault(ctx, name, vaultType)
	if err != nil {
		return err
	}

	color.Green("✅ Vault created: %s", vault.Name)
	fmt.Printf("   ID: %s\n", vault.ID)
	fmt.Printf("   Address: %s\n", valueOr(vault.Address, "N/A"))

	return nil
}

func valueOr(s string, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
