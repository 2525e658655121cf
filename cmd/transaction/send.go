package transaction

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/walletops/fordefi-cli/internal/config"
	"github/walletops/fordefi-cli/internal/fordefi"
)

type sendParams struct {
	vaultID   string
	recipient string
	amount    *big.Int
	token     string
	chainID   string
}

func newSend(cfg config.Config) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "send <vault-id> <recipient> <amount> <token-address> [chain-id]",
		Short: "Send ERC20 tokens from a vault",
		Long: `Send ERC20 tokens from a vault using the high-level evm_transfer type.

The amount is in the token's smallest unit (e.g. 10^6 for USDC).
The chain id defaults to Unichain (130).`,
		Example: `  fordefi transaction send \
    17332797-9d4e-4a97-8977-502863b7bc8c \
    0x8BFCF9e2764BC84DE4BBd0a0f5AAF19F47027A73 \
    1000000 \
    0x078D782b760474a361dDA0AF3839290b0EF57AD6 \
    130`,
		Args: cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseSendArgs(cfg, args)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			return runSend(cmd.Context(), cfg, params, note)
		},
	}

	cmd.Flags().StringVar(&note, "note", "Token transfer via API", "note attached to the transaction")

	return cmd
}

func parseSendArgs(cfg config.Config, args []string) (sendParams, error) {
	if _, err := uuid.Parse(args[0]); err != nil {
		return sendParams{}, errors.Wrapf(err, "invalid vault id %q", args[0])
	}
	if !common.IsHexAddress(args[1]) {
		return sendParams{}, errors.Errorf("invalid recipient address %q", args[1])
	}

	const base10 = 10
	amount, ok := new(big.Int).SetString(args[2], base10)
	if !ok || amount.Sign() <= 0 {
		return sendParams{}, errors.Errorf("invalid amount %q, expected a positive integer in the token's smallest unit", args[2])
	}

	if !common.IsHexAddress(args[3]) {
		return sendParams{}, errors.Errorf("invalid token address %q", args[3])
	}

	chainID := cfg.Unichain.ChainID
	if len(args) > 4 {
		chainID = args[4]
	}

	return sendParams{
		vaultID:   args[0],
		recipient: args[1],
		amount:    amount,
		token:     args[3],
		chainID:   chainID,
	}, nil
}

func runSend(ctx context.Context, cfg config.Config, params sendParams, note string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Printf("Sending %s tokens to %s\n", params.amount, params.recipient)

	body := fordefi.NewEVMTransferBody(
		params.vaultID,
		params.recipient,
		params.amount.String(),
		params.token,
		params.chainID,
		note,
	)

	tx, err := submit(ctx, cfg, body)
	if err != nil {
		return err
	}

	printTransaction(tx)

	return nil
}
