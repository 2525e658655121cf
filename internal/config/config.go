package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// UnichainConfig holds the Unichain network constants and the default
// vault used on that network
type UnichainConfig struct {
	ChainID     string
	USDCAddress string
	VaultID     string
}

// SepoliaConfig holds the Ethereum Sepolia network constants and the
// default vault used on that network
type SepoliaConfig struct {
	ChainID     string
	WETHAddress string
	VaultID     string
}

// LoggerConfig holds CLI logging settings
type LoggerConfig struct {
	Level              string
	PrettyPrintConsole bool
}

// Config is the full configuration of a single invocation. It is built
// once at process start and passed into the commands; nothing reads the
// environment after that point.
type Config struct {
	APIURL         string
	AccessToken    string
	OrgID          string
	PrivateKeyPath string
	ClientTimeout  time.Duration

	Unichain UnichainConfig
	Sepolia  SepoliaConfig

	Logger LoggerConfig
}

// DefaultConfigFromEnv resolves the configuration from the environment.
// A .env file in the working directory is loaded first; real
// environment variables win over .env values.
func DefaultConfigFromEnv() Config {
	// a missing .env file is fine, env vars alone are a valid setup
	_ = gotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("FORDEFI_API_URL", "https://api.fordefi.com")
	v.SetDefault("FORDEFI_PRIVATE_KEY_PATH", "./private.pem")
	v.SetDefault("FORDEFI_CLIENT_TIMEOUT", "30s")
	v.SetDefault("UNICHAIN_CHAIN_ID", "130")
	v.SetDefault("UNICHAIN_USDC_ADDRESS", "0x078D782b760474a361dDA0AF3839290b0EF57AD6")
	v.SetDefault("SEPOLIA_CHAIN_ID", "11155111")
	v.SetDefault("SEPOLIA_WETH_ADDRESS", "0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY_PRINT_CONSOLE", true)

	return Config{
		APIURL:         v.GetString("FORDEFI_API_URL"),
		AccessToken:    v.GetString("FORDEFI_ACCESS_TOKEN"),
		OrgID:          v.GetString("FORDEFI_ORG_ID"),
		PrivateKeyPath: v.GetString("FORDEFI_PRIVATE_KEY_PATH"),
		ClientTimeout:  v.GetDuration("FORDEFI_CLIENT_TIMEOUT"),
		Unichain: UnichainConfig{
			ChainID:     v.GetString("UNICHAIN_CHAIN_ID"),
			USDCAddress: v.GetString("UNICHAIN_USDC_ADDRESS"),
			VaultID:     v.GetString("UNICHAIN_VAULT_ID"),
		},
		Sepolia: SepoliaConfig{
			ChainID:     v.GetString("SEPOLIA_CHAIN_ID"),
			WETHAddress: v.GetString("SEPOLIA_WETH_ADDRESS"),
			VaultID:     v.GetString("SEPOLIA_VAULT_ID"),
		},
		Logger: LoggerConfig{
			Level:              v.GetString("LOG_LEVEL"),
			PrettyPrintConsole: v.GetBool("LOG_PRETTY_PRINT_CONSOLE"),
		},
	}
}

// Validate fails fast when credentials or key material are missing.
// Each check is independent so the error names the exact missing piece.
func (c Config) Validate() error {
	if c.AccessToken == "" {
		return errors.New("FORDEFI_ACCESS_TOKEN not set in environment")
	}
	if c.OrgID == "" {
		return errors.New("FORDEFI_ORG_ID not set in environment")
	}
	if _, err := os.Stat(c.PrivateKeyPath); err != nil {
		return errors.Wrapf(err, "private key not found: %s", c.PrivateKeyPath)
	}

	return nil
}

// Redacted returns a copy of the configuration safe to print: the
// access token is masked, everything else is kept verbatim.
func (c Config) Redacted() Config {
	if c.AccessToken != "" {
		c.AccessToken = "<redacted>"
	}

	return c
}
