package fordefi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/walletops/fordefi-cli/internal/config"
	"github/walletops/fordefi-cli/internal/signer"
)

const (
	vaultsPath       = "/api/v1/vaults"
	transactionsPath = "/api/v1/transactions"

	headerSignature = "x-signature"
	headerTimestamp = "x-timestamp"
)

// Client talks to the Fordefi REST API. One request per invocation,
// fully synchronous, bounded by the configured client timeout.
type Client struct {
	baseURL     string
	accessToken string
	signer      signer.Service
	httpClient  *http.Client
}

// NewClient creates a Fordefi API client. The signer may be nil for
// callers that only hit unsigned endpoints (vault creation).
func NewClient(cfg config.Config, requestSigner signer.Service) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.APIURL, "/"),
		accessToken: cfg.AccessToken,
		signer:      requestSigner,
		httpClient:  &http.Client{Timeout: cfg.ClientTimeout},
	}
}

// CreateVault creates a new vault.
//
// The vendor accepts vault creation with bearer auth alone today, in
// contrast to the transaction endpoint which additionally requires
// x-signature/x-timestamp. Whether that is by design or an oversight
// is unconfirmed, so this call stays unsigned.
// TODO: confirm against the vendor's authentication requirements.
func (c *Client) CreateVault(ctx context.Context, name string, vaultType string) (*Vault, error) {
	body, err := encode(CreateVaultBody{Name: name, Type: vaultType})
	if err != nil {
		return nil, err
	}

	var vault Vault
	if err := c.post(ctx, vaultsPath, body, false, &vault); err != nil {
		return nil, err
	}

	return &vault, nil
}

// CreateTransaction signs and submits a transaction request. The byte
// sequence that is signed is the byte sequence that goes on the wire.
func (c *Client) CreateTransaction(ctx context.Context, txBody TransactionBody) (*Transaction, error) {
	body, err := encode(txBody)
	if err != nil {
		return nil, err
	}

	var transaction Transaction
	if err := c.post(ctx, transactionsPath, body, true, &transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}

// post sends a JSON body with bearer auth, adding the signature headers
// for signed endpoints, and decodes a 2xx response into out. Any status
// >= 400 surfaces as *APIError with the response body; nothing is retried.
func (c *Client) post(ctx context.Context, path string, body []byte, signed bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", path)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	if signed {
		if c.signer == nil {
			return errors.Errorf("no request signer configured for signed endpoint %s", path)
		}

		// The timestamp is generated immediately before signing and
		// sent unchanged; signing covers path|timestamp|body.
		timestamp := signer.Timestamp()
		signature, err := c.signer.Sign(path, body, timestamp)
		if err != nil {
			return errors.Wrap(err, "failed to sign request")
		}

		req.Header.Set(headerSignature, signature)
		req.Header.Set(headerTimestamp, timestamp)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to POST %s", path)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s response body", path)
	}

	if res.StatusCode >= http.StatusBadRequest {
		log.Error().
			Int("status", res.StatusCode).
			Str("path", path).
			Msg("API request failed")

		return &APIError{StatusCode: res.StatusCode, Body: string(resBody)}
	}

	if err := json.Unmarshal(resBody, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", path)
	}

	return nil
}

// encode marshals a request body to its canonical compact form.
// encoding/json emits struct fields in declaration order with no
// inserted whitespace, so identical values produce byte-identical
// output across calls.
func encode(v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request body")
	}

	return body, nil
}
