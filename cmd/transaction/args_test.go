package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletops/fordefi-cli/internal/config"
)

const (
	testVaultID   = "17332797-9d4e-4a97-8977-502863b7bc8c"
	testRecipient = "0x8BFCF9e2764BC84DE4BBd0a0f5AAF19F47027A73"
	testToken     = "0x078D782b760474a361dDA0AF3839290b0EF57AD6"
	testWETH      = "0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14"
)

func testCfg() config.Config {
	return config.Config{
		Unichain: config.UnichainConfig{ChainID: "130"},
		Sepolia:  config.SepoliaConfig{ChainID: "11155111", WETHAddress: testWETH},
	}
}

func TestParseSendArgs(t *testing.T) {
	params, err := parseSendArgs(testCfg(), []string{testVaultID, testRecipient, "1000000", testToken})
	require.NoError(t, err)

	assert.Equal(t, testVaultID, params.vaultID)
	assert.Equal(t, testRecipient, params.recipient)
	assert.Equal(t, "1000000", params.amount.String())
	assert.Equal(t, testToken, params.token)
	assert.Equal(t, "130", params.chainID, "chain id defaults to Unichain")

	params, err = parseSendArgs(testCfg(), []string{testVaultID, testRecipient, "1000000", testToken, "137"})
	require.NoError(t, err)
	assert.Equal(t, "137", params.chainID)
}

func TestParseSendArgsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad vault id", []string{"not-a-uuid", testRecipient, "1000000", testToken}},
		{"bad recipient", []string{testVaultID, "0xnope", "1000000", testToken}},
		{"bad amount", []string{testVaultID, testRecipient, "1.5", testToken}},
		{"negative amount", []string{testVaultID, testRecipient, "-1", testToken}},
		{"zero amount", []string{testVaultID, testRecipient, "0", testToken}},
		{"bad token address", []string{testVaultID, testRecipient, "1000000", "USDC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSendArgs(testCfg(), tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseWrapArgs(t *testing.T) {
	params, err := parseWrapArgs(testCfg(), []string{testVaultID, "100000000000000000"})
	require.NoError(t, err)

	assert.Equal(t, testVaultID, params.vaultID)
	assert.Equal(t, "100000000000000000", params.amountWei.String())
	assert.Equal(t, testWETH, params.wethAddress, "WETH address defaults from config")
	assert.Equal(t, "11155111", params.chainID, "chain id defaults to Sepolia")

	params, err = parseWrapArgs(testCfg(), []string{testVaultID, "1", testRecipient, "1"})
	require.NoError(t, err)
	assert.Equal(t, testRecipient, params.wethAddress)
	assert.Equal(t, "1", params.chainID)
}

func TestParseWrapArgsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad vault id", []string{"nope", "1"}},
		{"bad amount", []string{testVaultID, "one"}},
		{"zero amount", []string{testVaultID, "0"}},
		{"bad weth address", []string{testVaultID, "1", "weth.eth"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseWrapArgs(testCfg(), tt.args)
			assert.Error(t, err)
		})
	}
}

func TestDepositCallData(t *testing.T) {
	// first 4 bytes of keccak256("deposit()")
	assert.Equal(t, "0xd0e30db0", depositCallData)
}
