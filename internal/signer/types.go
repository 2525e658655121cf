package signer

import "crypto/ecdsa"

// Service signs outgoing API requests for transport in the x-signature header
type Service interface {
	// Sign produces a base64-encoded DER ECDSA signature over the
	// canonical message path|timestamp|body
	Sign(path string, body []byte, timestamp string) (string, error)

	// PublicKey returns the public half of the signing key
	PublicKey() *ecdsa.PublicKey
}
