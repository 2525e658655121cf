package fordefi

const (
	// VaultTypeEVM creates a vault whose single address works across
	// all EVM-compatible chains; the chain is chosen per transaction
	VaultTypeEVM = "evm"

	// SignerTypeAPISigner marks the transaction for signing by the
	// organization's API signer
	SignerTypeAPISigner = "api_signer"

	// TransactionTypeEVM is the top-level discriminator for EVM transactions
	TransactionTypeEVM = "evm_transaction"

	// DetailsTypeTransfer is the high-level transfer type; the vendor
	// constructs the token call data itself
	DetailsTypeTransfer = "evm_transfer"

	// DetailsTypeRaw carries explicit destination, value and hex call
	// data for arbitrary contract interactions
	DetailsTypeRaw = "evm_raw_transaction"
)

// CreateVaultBody is POSTed to /api/v1/vaults
type CreateVaultBody struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TransactionBody is the top-level shape POSTed to /api/v1/transactions.
// Field order matters: the canonical JSON form of this struct is the
// byte sequence that gets signed and transmitted.
type TransactionBody struct {
	VaultID    string `json:"vault_id"`
	SignerType string `json:"signer_type"`
	Type       string `json:"type"`
	Details    any    `json:"details"`
	Note       string `json:"note"`
}

// EVMTransferDetails is the details payload of an evm_transfer
type EVMTransferDetails struct {
	Type            string          `json:"type"`
	To              string          `json:"to"`
	Value           TransferValue   `json:"value"`
	AssetIdentifier AssetIdentifier `json:"asset_identifier"`
}

// TransferValue is the amount in the token's smallest unit, wrapped in
// the vendor's object form (unlike the plain string of raw transactions)
type TransferValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// AssetIdentifier specifies which token an evm_transfer moves
type AssetIdentifier struct {
	Type    string       `json:"type"`
	Details AssetDetails `json:"details"`
}

// AssetDetails discriminates the token class (erc20)
type AssetDetails struct {
	Type  string     `json:"type"`
	Token AssetToken `json:"token"`
}

// AssetToken locates a token contract on a chain
type AssetToken struct {
	Chain   string `json:"chain"`
	ChainID string `json:"chain_id"`
	HexRepr string `json:"hex_repr"`
}

// RawTransactionDetails is the details payload of an evm_raw_transaction
type RawTransactionDetails struct {
	Type  string  `json:"type"`
	To    string  `json:"to"`
	Value string  `json:"value"`
	Data  HexData `json:"data"`
	Chain string  `json:"chain"`
}

// HexData is hex-encoded contract call data
type HexData struct {
	Type    string `json:"type"`
	HexData string `json:"hex_data"`
}

// Vault is the vendor's vault object; only the fields the CLI displays
// are decoded, nothing is schema-validated
type Vault struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
}

// Transaction is the vendor's transaction object; hash and explorer URL
// may still be empty while the transaction is pending
type Transaction struct {
	ID          string `json:"id"`
	Hash        string `json:"hash"`
	ExplorerURL string `json:"explorer_url"`
	State       string `json:"state"`
}

// NewEVMTransferBody builds an ERC20 transfer using the vendor's
// high-level evm_transfer type. The amount is in the token's smallest
// unit (10^6 for USDC, wei for 18-decimal tokens).
func NewEVMTransferBody(vaultID, recipient, amount, tokenAddress, chainID, note string) TransactionBody {
	return TransactionBody{
		VaultID:    vaultID,
		SignerType: SignerTypeAPISigner,
		Type:       TransactionTypeEVM,
		Details: EVMTransferDetails{
			Type: DetailsTypeTransfer,
			To:   recipient,
			Value: TransferValue{
				Type:  "value",
				Value: amount,
			},
			AssetIdentifier: AssetIdentifier{
				Type: "evm",
				Details: AssetDetails{
					Type: "erc20",
					Token: AssetToken{
						Chain:   chainName(chainID),
						ChainID: chainID,
						HexRepr: tokenAddress,
					},
				},
			},
		},
		Note: note,
	}
}

// NewRawTransactionBody builds an evm_raw_transaction carrying explicit
// destination, native value in wei and hex-encoded call data
func NewRawTransactionBody(vaultID, to, valueWei, hexData, chainID, note string) TransactionBody {
	return TransactionBody{
		VaultID:    vaultID,
		SignerType: SignerTypeAPISigner,
		Type:       TransactionTypeEVM,
		Details: RawTransactionDetails{
			Type:  DetailsTypeRaw,
			To:    to,
			Value: valueWei,
			Data: HexData{
				Type:    "hex",
				HexData: hexData,
			},
			Chain: chainName(chainID),
		},
		Note: note,
	}
}

// chainName renders the vendor's chain identifier format evm_<chain_id>
func chainName(chainID string) string {
	return "evm_" + chainID
}
