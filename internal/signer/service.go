package signer

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type service struct {
	key *ecdsa.PrivateKey
}

// NewService creates a new request signer for the given P-256 private key
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(key *ecdsa.PrivateKey) (Service, error) {
	if key == nil {
		return nil, errors.New("private key is required")
	}
	if key.Curve != elliptic.P256() {
		return nil, errors.Errorf("unsupported curve %s, expected P-256", key.Curve.Params().Name)
	}

	return &service{key: key}, nil
}

// Sign signs path|timestamp|body with ECDSA P-256 over SHA-256.
// The body must be the exact byte sequence that goes on the wire: any
// re-serialization between signing and transmission invalidates the
// signature. Signature bytes are not stable across calls (ECDSA uses a
// randomized nonce); every signature over the same inputs verifies.
func (s *service) Sign(path string, body []byte, timestamp string) (string, error) {
	sig, err := ecdsa.SignASN1(rand.Reader, s.key, digest(path, body, timestamp))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign request")
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}

// PublicKey returns the public half of the signing key
func (s *service) PublicKey() *ecdsa.PublicKey {
	return &s.key.PublicKey
}

// Verify checks a base64-encoded DER signature against the canonical
// message path|timestamp|body
func Verify(pub *ecdsa.PublicKey, path string, body []byte, timestamp string, signature string) error {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return errors.Wrap(err, "failed to decode signature")
	}

	if !ecdsa.VerifyASN1(pub, digest(path, body, timestamp), sig) {
		return errors.New("signature does not verify")
	}

	return nil
}

// digest hashes the canonical message. Separator and field order are
// fixed: path|timestamp|body.
func digest(path string, body []byte, timestamp string) []byte {
	h := sha256.New()
	h.Write([]byte(path))
	h.Write([]byte("|"))
	h.Write([]byte(timestamp))
	h.Write([]byte("|"))
	h.Write(body)

	return h.Sum(nil)
}

// Timestamp returns the current time as the decimal string of
// milliseconds since the Unix epoch, the format the x-timestamp header
// carries. It must be generated immediately before signing and reused
// unchanged in the outgoing header.
func Timestamp() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
