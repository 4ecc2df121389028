package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ConstraintClassifier maps driver-level errors to the constraint
// violations the repositories care about. Each supported backend provides
// its own implementation because the drivers expose error codes through
// entirely different types.
type ConstraintClassifier interface {
	// IsUniqueViolation reports whether err was caused by a violated
	// UNIQUE constraint (e.g. a duplicate email).
	IsUniqueViolation(err error) bool
}

// PostgresConstraintClassifier implements [ConstraintClassifier] for
// PostgreSQL by inspecting pgconn error codes.
type PostgresConstraintClassifier struct{}

// NewPostgresConstraintClassifier constructs a [PostgresConstraintClassifier].
func NewPostgresConstraintClassifier() *PostgresConstraintClassifier {
	return &PostgresConstraintClassifier{}
}

// IsUniqueViolation implements [ConstraintClassifier]. It unwraps err as a
// *pgconn.PgError and checks for code 23505 (unique_violation).
func (c *PostgresConstraintClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

// SQLiteConstraintClassifier implements [ConstraintClassifier] for SQLite
// by inspecting the extended result codes of the mattn/go-sqlite3 driver.
type SQLiteConstraintClassifier struct{}

// NewSQLiteConstraintClassifier constructs a [SQLiteConstraintClassifier].
func NewSQLiteConstraintClassifier() *SQLiteConstraintClassifier {
	return &SQLiteConstraintClassifier{}
}

// IsUniqueViolation implements [ConstraintClassifier]. It unwraps err as a
// sqlite3.Error and checks for the SQLITE_CONSTRAINT_UNIQUE and
// SQLITE_CONSTRAINT_PRIMARYKEY extended codes.
func (c *SQLiteConstraintClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
