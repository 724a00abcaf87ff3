package model

import "fmt"

// APIError is a provider-neutral fault returned by a remote API adapter.
type APIError struct {
	Service    string
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (x *APIError) Error() string {
	return fmt.Sprintf("%s API error: status=%d code=%s message=%s", x.Service, x.StatusCode, x.Code, x.Message)
}
