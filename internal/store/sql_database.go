// Package store implements the persistence layer: database connectors for
// PostgreSQL and SQLite, capability detection, and the user and note
// repositories.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/migrations"
)

// Features describes optional schema capabilities discovered once at
// store initialization. Repositories consult it instead of sniffing
// driver errors per request.
type Features struct {
	// FavoriteColumn reports whether the notes table carries the
	// "favorite" column. Databases migrated before the favorite feature
	// was introduced lack it; list operations then synthesize
	// favorite=false and toggle operations are unavailable.
	FavoriteColumn bool
}

// DB is the shared database handle injected into repositories.
//
// It embeds *sql.DB and carries everything that differs between the two
// supported backends: the placeholder style for query building, the
// constraint-error classifier, and the detected feature set.
type DB struct {
	*sql.DB

	driver     string
	builder    squirrel.StatementBuilderType
	classifier ConstraintClassifier
	features   Features
	logger     *logger.Logger
}

// Driver returns the configured driver name ("postgres" or "sqlite").
func (db *DB) Driver() string {
	return db.driver
}

// Features returns the schema capabilities detected by DetectFeatures.
func (db *DB) Features() Features {
	return db.features
}

// Migrate applies all pending schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// DetectFeatures inspects the connected schema once and records which
// optional capabilities it provides. Must be called after Migrate (or, for
// externally managed databases, after connecting) and before the first
// repository call.
func (db *DB) DetectFeatures(ctx context.Context) error {
	hasFavorite, err := db.hasNotesColumn(ctx, "favorite")
	if err != nil {
		return fmt.Errorf("error detecting schema features: %w", err)
	}

	db.features.FavoriteColumn = hasFavorite
	db.logger.Info().
		Bool("favorite_column", hasFavorite).
		Msg("schema features detected")

	return nil
}

// hasNotesColumn reports whether the notes table has the named column.
// The check is dialect-specific: information_schema on PostgreSQL,
// pragma_table_info on SQLite.
func (db *DB) hasNotesColumn(ctx context.Context, column string) (bool, error) {
	var query string
	switch db.driver {
	case "postgres":
		query = `SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'notes' AND column_name = $1
		);`
	case "sqlite":
		query = `SELECT COUNT(*) > 0 FROM pragma_table_info('notes') WHERE name = ?;`
	default:
		return false, fmt.Errorf("unsupported driver: %s", db.driver)
	}

	var exists bool
	if err := db.QueryRowContext(ctx, query, column).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
