package service

import "errors"

var (
	// ErrInvalidCredentials is returned on any login failure caused by the
	// supplied credentials. Unknown email and wrong password deliberately
	// share this single error so the caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned for every token verification
	// failure: bad signature, wrong issuer, malformed token, or expiry.
	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")

	// ErrNoAuthenticatedUser is returned when a note operation is invoked
	// without a verified owner identifier.
	ErrNoAuthenticatedUser = errors.New("no authenticated user")

	// ErrNotOwner is returned when the authenticated user attempts to
	// mutate or delete a note owned by someone else.
	ErrNotOwner = errors.New("note belongs to a different user")
)
