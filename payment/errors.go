package payment

import "fmt"

// ValidationError reports missing or malformed user input; it is recovered
// locally and shown inline, never retried against an external system.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError reports that the commerce backend was unreachable or
// returned a non-2xx response
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// GatewayError reports that the payment gateway rejected tokenization or
// transaction creation. Reason carries the gateway's own message when the
// error payload was parseable.
type GatewayError struct {
	Reason string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "payment gateway rejected the request"
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
