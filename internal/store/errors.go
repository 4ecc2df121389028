package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists in the
	// database.
	ErrEmailAlreadyExists = errors.New("email already in use")

	// ErrUserNotFound is returned when a lookup by email matches no user
	// record.
	ErrUserNotFound = errors.New("user was not found")

	// ErrNoteNotFound is returned when a query, update, or delete targets a
	// note ID that does not exist in the database.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrFavoriteNotSupported is returned when a favorite toggle is
	// requested but the connected schema predates the favorite column.
	// A schema migration is required to enable the feature.
	ErrFavoriteNotSupported = errors.New("favorite flag is not supported by the current schema: run migrations to add the notes.favorite column")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
