package twitch_client

import "fmt"

// ResponseError is a non-2xx answer from Twitch.
type ResponseError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%d %s : %s", e.StatusCode, e.Status, e.Message)
}

// UpstreamAuthError is returned when the token endpoint rejects the client
// credentials. No token is stored, so the next call authenticates again.
type UpstreamAuthError struct {
	*ResponseError
}

func (e *UpstreamAuthError) Unwrap() error { return e.ResponseError }
func (e *UpstreamAuthError) Cause() error  { return e.ResponseError }

// UpstreamApiError is returned when a Helix endpoint answers with non-2xx.
// The cached token is kept.
type UpstreamApiError struct {
	*ResponseError
}

func (e *UpstreamApiError) Unwrap() error { return e.ResponseError }
func (e *UpstreamApiError) Cause() error  { return e.ResponseError }
