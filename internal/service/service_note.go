package service

import (
	"context"
	"fmt"

	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/internal/store"
	"github.com/mlevchuk/noteapp/internal/validators"
	"github.com/mlevchuk/noteapp/models"
)

// noteService is the concrete implementation of NoteService.
//
// Every mutating operation runs the same sequence: fetch the note, check
// ownership via authorizeOwner, then apply the mutation. Lookup and
// mutation are separate statements, so two concurrent mutations of the
// same note can interleave; at this scale the race is accepted rather
// than closed with row locking.
type noteService struct {
	noteRepository store.NoteRepository
	validator      *validators.NoteValidator
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validators.NewNoteValidator(),
		logger:         logger,
	}
}

// authorizeOwner is the single capability check applied by every operation
// that touches an existing note: the caller may proceed only when their
// verified identifier equals the note's owner identifier.
func authorizeOwner(note models.Note, userID int64) error {
	if note.UserID != userID {
		return ErrNotOwner
	}
	return nil
}

// requireUser rejects operations invoked without a verified owner identifier.
func requireUser(userID int64) error {
	if userID <= 0 {
		return ErrNoAuthenticatedUser
	}
	return nil
}

// Create persists a new note owned by userID. The favorite flag always
// starts false.
//
// Returns:
//   - ErrNoAuthenticatedUser if userID is not a verified identifier.
//   - *validators.ValidationError if title or content is empty.
//   - A wrapped storage error on repository failure.
func (s *noteService) Create(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := requireUser(userID); err != nil {
		return models.Note{}, err
	}

	if err := s.validator.ValidateNote(req); err != nil {
		log.Error().Int64("user_id", userID).Msg("invalid note data provided")
		return models.Note{}, err
	}

	note := models.Note{
		Title:   req.Title,
		Content: req.Content,
		UserID:  userID,
	}

	createdNote, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// List returns all notes owned by userID ordered newest first.
//
// On schemas without the favorite column the repository synthesizes
// favorite=false, so listing keeps working across the schema migration.
func (s *noteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if err := requireUser(userID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepository.GetNotesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing notes ended with error")
		return nil, fmt.Errorf("listing notes ended with error: %w", err)
	}

	return notes, nil
}

// Update overwrites title and content of the identified note and refreshes
// its update timestamp.
//
// Returns:
//   - ErrNoAuthenticatedUser if userID is not a verified identifier.
//   - *validators.ValidationError if title or content is empty.
//   - store.ErrNoteNotFound (wrapped) if the note does not exist.
//   - ErrNotOwner if the note belongs to a different user.
func (s *noteService) Update(ctx context.Context, userID, noteID int64, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := requireUser(userID); err != nil {
		return models.Note{}, err
	}

	if err := s.validator.ValidateNote(req); err != nil {
		log.Error().Int64("user_id", userID).Int64("note_id", noteID).Msg("invalid note data provided")
		return models.Note{}, err
	}

	note, err := s.noteRepository.GetNoteByID(ctx, noteID)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("note lookup ended with error")
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	if err := authorizeOwner(note, userID); err != nil {
		log.Warn().Int64("user_id", userID).Int64("note_id", noteID).Int64("owner_id", note.UserID).Msg("attempt to update someone else's note")
		return models.Note{}, err
	}

	note.Title = req.Title
	note.Content = req.Content

	updatedNote, err := s.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updatedNote, nil
}

// Delete permanently removes the identified note.
//
// Returns:
//   - ErrNoAuthenticatedUser if userID is not a verified identifier.
//   - store.ErrNoteNotFound (wrapped) if the note does not exist.
//   - ErrNotOwner if the note belongs to a different user.
func (s *noteService) Delete(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	if err := requireUser(userID); err != nil {
		return err
	}

	note, err := s.noteRepository.GetNoteByID(ctx, noteID)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("note lookup ended with error")
		return fmt.Errorf("note lookup ended with error: %w", err)
	}

	if err := authorizeOwner(note, userID); err != nil {
		log.Warn().Int64("user_id", userID).Int64("note_id", noteID).Int64("owner_id", note.UserID).Msg("attempt to delete someone else's note")
		return err
	}

	if err := s.noteRepository.DeleteNote(ctx, noteID); err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// ToggleFavorite flips the favorite flag of the identified note to its
// logical negation and returns the updated note.
//
// Returns:
//   - ErrNoAuthenticatedUser if userID is not a verified identifier.
//   - store.ErrNoteNotFound (wrapped) if the note does not exist.
//   - ErrNotOwner if the note belongs to a different user.
//   - store.ErrFavoriteNotSupported (wrapped) on schemas without the
//     favorite column.
func (s *noteService) ToggleFavorite(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := requireUser(userID); err != nil {
		return models.Note{}, err
	}

	note, err := s.noteRepository.GetNoteByID(ctx, noteID)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("note lookup ended with error")
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	if err := authorizeOwner(note, userID); err != nil {
		log.Warn().Int64("user_id", userID).Int64("note_id", noteID).Int64("owner_id", note.UserID).Msg("attempt to toggle someone else's note")
		return models.Note{}, err
	}

	updatedNote, err := s.noteRepository.SetFavorite(ctx, noteID, !note.Favorite)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Msg("favorite toggle ended with error")
		return models.Note{}, fmt.Errorf("favorite toggle ended with error: %w", err)
	}

	return updatedNote, nil
}
