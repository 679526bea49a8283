package adapters

import "fmt"

// UpstreamStatusError is returned when an upstream API answers with a
// non-200 status. The response body is carried verbatim.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d: %s", e.StatusCode, e.Body)
}

// UpstreamRejectionError is returned when an upstream API answers 200 but
// signals failure in its payload.
type UpstreamRejectionError struct {
	Code    int
	Message string
}

func (e *UpstreamRejectionError) Error() string {
	return fmt.Sprintf("upstream rejected the request (code %d): %s", e.Code, e.Message)
}

// ParseError is returned when an upstream response body does not match the
// expected schema. It must surface as an error, never as a panic.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse upstream response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to parse upstream response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
