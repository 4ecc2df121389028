package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Whether the favorite column participates in queries is decided once per
// process from the feature set detected at store initialization; on legacy
// schemas every read synthesizes favorite=false and [SetFavorite] is
// rejected with [ErrFavoriteNotSupported].
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// scanNote scans a single note row according to the detected schema shape.
// On legacy schemas the favorite flag is absent from the row and remains
// false on the returned model.
func (r *noteRepository) scanNote(row squirrel.RowScanner, note *models.Note) error {
	if r.db.features.FavoriteColumn {
		return row.Scan(&note.NoteID, &note.Title, &note.Content, &note.Favorite, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
	}
	return row.Scan(&note.NoteID, &note.Title, &note.Content, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
}

// CreateNote persists a new note owned by note.UserID and returns the
// fully populated [models.Note] with server-assigned fields (NoteID,
// CreatedAt, UpdatedAt). The favorite flag always starts false.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(r.db.builder, note, r.db.features.FavoriteColumn)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := r.scanNote(row, &saved); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Int64("user_id", note.UserID).Msg("error: scanning created note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetNotesByUser returns every note owned by userID, newest first.
func (r *noteRepository) GetNotesByUser(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildNotesByUserQuery(r.db.builder, userID, r.db.features.FavoriteColumn)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNotesByUser").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNotesByUser").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)

	for rows.Next() {
		var note models.Note
		if scanErr := r.scanNote(rows, &note); scanErr != nil {
			log.Err(scanErr).Str("func", "*noteRepository.GetNotesByUser").Int64("user_id", userID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*noteRepository.GetNotesByUser").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// GetNoteByID retrieves a single note by its identifier.
//
// Error handling:
//   - No matching row → [ErrNoteNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) GetNoteByID(ctx context.Context, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildNoteByIDQuery(r.db.builder, noteID, r.db.features.FavoriteColumn)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNoteByID").Msg("error: building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := r.scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.GetNoteByID").Int64("note_id", noteID).Msg("error: scanning found note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// UpdateNote overwrites title and content of an existing note, refreshes
// its update timestamp, and returns the updated row.
//
// Error handling:
//   - No matching row → [ErrNoteNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.db.builder, note, r.db.features.FavoriteColumn)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := r.scanNote(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.UpdateNote").Int64("note_id", note.NoteID).Msg("error: scanning updated note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteNote permanently removes the note with the given identifier.
//
// Error handling:
//   - Zero affected rows → [ErrNoteNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) DeleteNote(ctx context.Context, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.db.builder, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Int64("note_id", noteID).Msg("failed to execute delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// SetFavorite sets the favorite flag of the note and returns the updated
// row. The flag value is decided by the caller (the service reads the
// current value first and passes its negation).
//
// Error handling:
//   - Legacy schema without the favorite column → [ErrFavoriteNotSupported].
//   - No matching row → [ErrNoteNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) SetFavorite(ctx context.Context, noteID int64, favorite bool) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !r.db.features.FavoriteColumn {
		log.Warn().Str("func", "*noteRepository.SetFavorite").Int64("note_id", noteID).Msg("favorite column is missing from schema")
		return models.Note{}, ErrFavoriteNotSupported
	}

	query, args, err := buildSetFavoriteQuery(r.db.builder, noteID, favorite)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.SetFavorite").Msg("error: building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := r.scanNote(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.SetFavorite").Int64("note_id", noteID).Msg("error: scanning updated note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}
