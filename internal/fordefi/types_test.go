package fordefi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletops/fordefi-cli/internal/fordefi"
)

func TestNewEVMTransferBodyCanonicalJSON(t *testing.T) {
	body := fordefi.NewEVMTransferBody(
		"17332797-9d4e-4a97-8977-502863b7bc8c",
		"0x8BFCF9e2764BC84DE4BBd0a0f5AAF19F47027A73",
		"1000000",
		"0x078D782b760474a361dDA0AF3839290b0EF57AD6",
		"130",
		"Token transfer via API",
	)

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	expected := `{"vault_id":"17332797-9d4e-4a97-8977-502863b7bc8c",` +
		`"signer_type":"api_signer","type":"evm_transaction",` +
		`"details":{"type":"evm_transfer",` +
		`"to":"0x8BFCF9e2764BC84DE4BBd0a0f5AAF19F47027A73",` +
		`"value":{"type":"value","value":"1000000"},` +
		`"asset_identifier":{"type":"evm","details":{"type":"erc20",` +
		`"token":{"chain":"evm_130","chain_id":"130",` +
		`"hex_repr":"0x078D782b760474a361dDA0AF3839290b0EF57AD6"}}}},` +
		`"note":"Token transfer via API"}`

	assert.Equal(t, expected, string(encoded))
}

func TestNewRawTransactionBodyCanonicalJSON(t *testing.T) {
	body := fordefi.NewRawTransactionBody(
		"646c57e4-bbb4-434f-855f-e0141a88265d",
		"0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14",
		"100000000000000000",
		"0xd0e30db0",
		"11155111",
		"Wrap ETH to WETH via API",
	)

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	expected := `{"vault_id":"646c57e4-bbb4-434f-855f-e0141a88265d",` +
		`"signer_type":"api_signer","type":"evm_transaction",` +
		`"details":{"type":"evm_raw_transaction",` +
		`"to":"0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14",` +
		`"value":"100000000000000000",` +
		`"data":{"type":"hex","hex_data":"0xd0e30db0"},` +
		`"chain":"evm_11155111"},` +
		`"note":"Wrap ETH to WETH via API"}`

	assert.Equal(t, expected, string(encoded))
}

// identical values must serialize to byte-identical output across
// calls, otherwise the signed message can diverge from the transmitted
// body
func TestTransactionBodySerializationIsStable(t *testing.T) {
	build := func() []byte {
		body := fordefi.NewEVMTransferBody("v", "0xabc", "1", "0xdef", "130", "n")
		encoded, err := json.Marshal(body)
		require.NoError(t, err)

		return encoded
	}

	first := build()
	for range 16 {
		assert.Equal(t, first, build())
	}
}
