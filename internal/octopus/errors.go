package octopus

import "errors"

// Sentinel errors for Octopus API operations.
//
// These errors can be checked using errors.Is() for specific handling:
//
//	if errors.Is(err, octopus.ErrAuthFailed) {
//	    // Credentials rejected, not worth retrying
//	}
var (
	// ErrAuthFailed indicates the credential exchange was rejected.
	ErrAuthFailed = errors.New("octopus: authentication failed")

	// ErrRequestFailed indicates a REST request could not complete or was
	// rejected by the API.
	ErrRequestFailed = errors.New("octopus: request failed")
)
