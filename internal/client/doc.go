// Package client provides a typed HTTP client for the note service API.
//
// It is used by integration tests and is suitable for external tooling that
// needs programmatic access to the registration, login and note endpoints.
package client
