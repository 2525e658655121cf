package transaction

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/walletops/fordefi-cli/internal/config"
	"github/walletops/fordefi-cli/internal/fordefi"
)

// depositCallData is the 4-byte selector of keccak256("deposit()").
// deposit() takes no arguments; the wrapped amount rides in the
// transaction value.
var depositCallData = hexutil.Encode(crypto.Keccak256([]byte("deposit()"))[:4])

type wrapParams struct {
	vaultID     string
	amountWei   *big.Int
	wethAddress string
	chainID     string
}

func newWrap(cfg config.Config) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "wrap <vault-id> <amount-wei> [weth-address] [chain-id]",
		Short: "Wrap ETH into WETH",
		Long: `Wrap ETH into WETH by calling the WETH contract's deposit() function
with an evm_raw_transaction.

The amount is in wei (1 ETH = 1000000000000000000 wei). The WETH
address and chain id default to Ethereum Sepolia.`,
		Example: `  fordefi transaction wrap \
    646c57e4-bbb4-434f-855f-e0141a88265d \
    100000000000000000 \
    0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14 \
    11155111`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseWrapArgs(cfg, args)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			return runWrap(cmd.Context(), cfg, params, note)
		},
	}

	cmd.Flags().StringVar(&note, "note", "Wrap ETH to WETH via API", "note attached to the transaction")

	return cmd
}

func parseWrapArgs(cfg config.Config, args []string) (wrapParams, error) {
	if _, err := uuid.Parse(args[0]); err != nil {
		return wrapParams{}, errors.Wrapf(err, "invalid vault id %q", args[0])
	}

	const base10 = 10
	amountWei, ok := new(big.Int).SetString(args[1], base10)
	if !ok || amountWei.Sign() <= 0 {
		return wrapParams{}, errors.Errorf("invalid amount %q, expected a positive integer in wei", args[1])
	}

	wethAddress := cfg.Sepolia.WETHAddress
	if len(args) > 2 {
		wethAddress = args[2]
	}
	if !common.IsHexAddress(wethAddress) {
		return wrapParams{}, errors.Errorf("invalid WETH address %q", wethAddress)
	}

	chainID := cfg.Sepolia.ChainID
	if len(args) > 3 {
		chainID = args[3]
	}

	return wrapParams{
		vaultID:     args[0],
		amountWei:   amountWei,
		wethAddress: wethAddress,
		chainID:     chainID,
	}, nil
}

func runWrap(ctx context.Context, cfg config.Config, params wrapParams, note string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	eth := new(big.Float).Quo(new(big.Float).SetInt(params.amountWei), big.NewFloat(1e18))
	fmt.Printf("Wrapping %s wei (%.6f ETH) to WETH\n", params.amountWei, eth)
	fmt.Printf("WETH Contract: %s\n", params.wethAddress)
	fmt.Printf("Chain ID: %s\n", params.chainID)

	body := fordefi.NewRawTransactionBody(
		params.vaultID,
		params.wethAddress,
		params.amountWei.String(),
		depositCallData,
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
