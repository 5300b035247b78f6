package bugcrowd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// APIError is a non-2xx response from the Bugcrowd API. The remote error
// payload is carried verbatim — callers need the original diagnostic.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bugcrowd api returned %d: %s", e.StatusCode, e.Body)
}

// TransportError is a network-level fault (timeout, DNS, TLS, refused
// connection) — a distinct kind from an API-reported failure.
type TransportError struct {
	Kind string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("bugcrowd api unreachable (%s): %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classifyTransport wraps a round-trip error with a human-readable fault kind.
func classifyTransport(err error) *TransportError {
	kind := "network error"

	var netErr net.Error
	var dnsErr *net.DNSError
	var tlsErr *tls.CertificateVerificationError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = "timeout"
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = "timeout"
	case errors.As(err, &dnsErr):
		kind = "dns failure"
	case errors.Is(err, syscall.ECONNREFUSED):
		kind = "connection refused"
	case errors.As(err, &tlsErr):
		kind = "tls failure"
	}

	return &TransportError{Kind: kind, Err: err}
}
