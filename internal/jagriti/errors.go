package jagriti

import "fmt"

// ErrorKind classifies a failed upstream call
type ErrorKind int

const (
	// KindTimeout means the request timed out, retries exhausted
	KindTimeout ErrorKind = iota
	// KindUnreachable means a transport-level failure (DNS, connection reset), retries exhausted
	KindUnreachable
	// KindHTTP means upstream answered with a non-2xx status; never retried
	KindHTTP
	// KindMalformed means the response body did not match the expected shape; never retried
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindUnreachable:
		return "unreachable"
	case KindHTTP:
		return "http_error"
	case KindMalformed:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// APIError is the single structured error type for all upstream failures
type APIError struct {
	Kind       ErrorKind
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("jagriti %s: upstream returned HTTP %d: %s", e.Op, e.StatusCode, e.Body)
	case KindTimeout:
		return fmt.Sprintf("jagriti %s: request timed out: %v", e.Op, e.Err)
	case KindUnreachable:
		return fmt.Sprintf("jagriti %s: upstream unreachable: %v", e.Op, e.Err)
	case KindMalformed:
		return fmt.Sprintf("jagriti %s: malformed upstream response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("jagriti %s: %v", e.Op, e.Err)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// retryable reports whether the failure may be retried. Only transport
// failures qualify; a received HTTP response never does.
func (e *APIError) retryable() bool {
	return e.Kind == KindTimeout || e.Kind == KindUnreachable
}
