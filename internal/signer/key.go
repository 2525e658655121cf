package signer

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"os"

	"github.com/pkg/errors"
)

// LoadPrivateKey reads and parses a PEM-encoded ECDSA private key from
// disk. The key is loaded on demand and released with the signer so key
// lifetime stays explicit.
func LoadPrivateKey(path string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read private key %s", path)
	}

	key, err := ParsePrivateKey(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse private key %s", path)
	}

	return key, nil
}

// ParsePrivateKey parses a PEM-encoded ECDSA private key. Both SEC1
// ("EC PRIVATE KEY") and PKCS#8 ("PRIVATE KEY") encodings are accepted.
// Encrypted keys are rejected; no passphrase support.
func ParsePrivateKey(data []byte) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing private key")
	}

	if block.Type == "ENCRYPTED PRIVATE KEY" || block.Headers["Proc-Type"] == "4,ENCRYPTED" {
		return nil, errors.New("encrypted private keys are not supported")
	}

	switch block.Type {
	case "EC PRIVATE KEY":
		key, err := x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse EC private key")
		}

		return key, nil
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse PKCS#8 private key")
		}

		ecKey, ok := key.(*ecdsa.PrivateKey)
		if !ok {
			return nil, errors.Errorf("unsupported key type %T, expected ECDSA", key)
		}

		return ecKey, nil
	default:
		return nil, errors.Errorf("unsupported PEM block type %q", block.Type)
	}
}
