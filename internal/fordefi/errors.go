package fordefi

import "fmt"

// APIError carries a non-2xx API response. The response body is kept
// verbatim as diagnostic text. The client never retries: a retried
// transfer could submit a duplicate on-chain transaction, so retrying
// is a caller decision.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fordefi API error %d: %s", e.StatusCode, e.Body)
}
