package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mlevchuk/noteapp/internal/config"
	"github.com/mlevchuk/noteapp/internal/logger"
)

// NewConnectPostgres opens a PostgreSQL connection described by cfg.DSN,
// verifies it with a ping, and returns a [*DB] configured with
// dollar-style placeholders and the PostgreSQL constraint classifier.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:         conn,
		driver:     config.DriverPostgres,
		builder:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		classifier: NewPostgresConstraintClassifier(),
		logger:     log,
	}

	return db, nil
}
