package model

import "fmt"

// MissingCredentialError reports a required key or secret absent at invocation time
type MissingCredentialError struct {
	Field string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential: %s", e.Field)
}

// ProviderError reports a non-success status or malformed body from a search provider
type ProviderError struct {
	Provider   ProviderID
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s search failed: %s", e.Provider, e.Body)
	}
	return fmt.Sprintf("%s search failed with status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// TransportError reports a network-level failure reaching an external endpoint
type TransportError struct {
	Provider ProviderID
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BackendError reports an inference call that failed or returned unusable content
type BackendError struct {
	Backend BackendID
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s analysis failed: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
