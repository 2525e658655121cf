package transaction

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github/walletops/fordefi-cli/internal/config"
	"github/walletops/fordefi-cli/internal/fordefi"
	"github/walletops/fordefi-cli/internal/signer"
)

// New returns the transaction subcommand group
func New(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "Create and submit signed transactions",
	}

	cmd.AddCommand(
		newSend(cfg),
		newWrap(cfg),
	)

	return cmd
}

// submit loads the signing key, signs the transaction request and posts
// it, with a spinner on stderr while the call is in flight
func submit(ctx context.Context, cfg config.Config, body fordefi.TransactionBody) (*fordefi.Transaction, error) {
	key, err := signer.LoadPrivateKey(cfg.PrivateKeyPath)
	if err != nil {
		return nil, err
	}

	requestSigner, err := signer.NewService(key)
	if err != nil {
		return nil, err
	}

	client := fordefi.NewClient(cfg, requestSigner)

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	spin.Suffix = " submitting transaction..."
	spin.Start()
	defer spin.Stop()

	return client.CreateTransaction(ctx, body)
}

func printTransaction(tx *fordefi.Transaction) {
	color.Green("✅ Transaction: %s", tx.ID)
	fmt.Printf("   Hash: %s\n", valueOr(tx.Hash, "pending"))
	fmt.Printf("   Explorer: %s\n", valueOr(tx.ExplorerURL, "N/A"))
}

func valueOr(s string, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
