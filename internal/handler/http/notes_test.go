package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevchuk/noteapp/internal/service"
	"github.com/mlevchuk/noteapp/internal/store"
	"github.com/mlevchuk/noteapp/models"
)

func TestCreateNote_Success(t *testing.T) {
	notes := &mockNoteService{
		createFn: func(_ context.Context, userID int64, req models.NoteRequest) (models.Note, error) {
			assert.Equal(t, int64(1), userID)
			return models.Note{NoteID: 7, Title: req.Title, Content: req.Content, UserID: userID}, nil
		},
	}
	h := newTestHandler(t, nil, notes)

	body := jsonBody(t, models.NoteRequest{Title: "groceries", Content: "milk"})
	req := withUserID(httptest.NewRequest(http.MethodPost, "/noteapp/create-note", strings.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, int64(7), note.NoteID)
	assert.Equal(t, "groceries", note.Title)
}

// TestCreateNote_MissingUserID verifies the 401 short-circuit when the auth
// middleware never stored a user ID; the note service must not be reached.
func TestCreateNote_MissingUserID(t *testing.T) {
	h := newTestHandler(t, nil, &mockNoteService{})

	body := jsonBody(t, models.NoteRequest{Title: "t", Content: "c"})
	req := httptest.NewRequest(http.MethodPost, "/noteapp/create-note", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization token missing", decodeMessage(t, rec))
}

func TestCreateNote_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, &mockNoteService{})

	req := withUserID(httptest.NewRequest(http.MethodPost, "/noteapp/create-note", strings.NewReader("{oops")), 1)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeMessage(t, rec))
}

func TestGetNotes_Success(t *testing.T) {
	notes := &mockNoteService{
		listFn: func(_ context.Context, userID int64) ([]models.Note, error) {
			assert.Equal(t, int64(1), userID)
			return []models.Note{
				{NoteID: 2, Title: "newer", UserID: 1},
				{NoteID: 1, Title: "older", UserID: 1},
			}, nil
		},
	}
	h := newTestHandler(t, nil, notes)

	req := withUserID(httptest.NewRequest(http.MethodGet, "/noteapp/get-notes", nil), 1)
	rec := httptest.NewRecorder()

	h.getNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].NoteID)
}

func TestGetNotes_EmptyList(t *testing.T) {
	notes := &mockNoteService{
		listFn: func(_ context.Context, _ int64) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	}
	h := newTestHandler(t, nil, notes)

	req := withUserID(httptest.NewRequest(http.MethodGet, "/noteapp/get-notes", nil), 1)
	rec := httptest.NewRecorder()

	h.getNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUpdateNote_Success(t *testing.T) {
	notes := &mockNoteService{
		updateFn: func(_ context.Context, userID, noteID int64, req models.NoteRequest) (models.Note, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(3), noteID)
			return models.Note{NoteID: noteID, Title: req.Title, Content: req.Content, UserID: userID}, nil
		},
	}
	h := newTestHandler(t, nil, notes)

	body := jsonBody(t, models.NoteRequest{Title: "new title", Content: "new content"})
	req := httptest.NewRequest(http.MethodPut, "/noteapp/update-note/3", strings.NewReader(body))
	req = withNoteID(withUserID(req, 1), "3")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, "new title", note.Title)
}

func TestUpdateNote_InvalidNoteID(t *testing.T) {
	h := newTestHandler(t, nil, &mockNoteService{})

	body := jsonBody(t, models.NoteRequest{Title: "t", Content: "c"})
	req := httptest.NewRequest(http.MethodPut, "/noteapp/update-note/abc", strings.NewReader(body))
	req = withNoteID(withUserID(req, 1), "abc")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid note ID", decodeMessage(t, rec))
}

func TestUpdateNote_NotOwner(t *testing.T) {
	notes := &mockNoteService{
		updateFn: func(_ context.Context, _, _ int64, _ models.NoteRequest) (models.Note, error) {
			return models.Note{}, service.ErrNotOwner
		},
	}
	h := newTestHandler(t, nil, notes)

	body := jsonBody(t, models.NoteRequest{Title: "t", Content: "c"})
	req := httptest.NewRequest(http.MethodPut, "/noteapp/update-note/3", strings.NewReader(body))
	req = withNoteID(withUserID(req, 1), "3")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You do not have access to this note", decodeMessage(t, rec))
}

func TestUpdateNote_NotFound(t *testing.T) {
	notes := &mockNoteService{
		updateFn: func(_ context.Context, _, _ int64, _ models.NoteRequest) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	h := newTestHandler(t, nil, notes)

	body := jsonBody(t, models.NoteRequest{Title: "t", Content: "c"})
	req := httptest.NewRequest(http.MethodPut, "/noteapp/update-note/999", strings.NewReader(body))
	req = withNoteID(withUserID(req, 1), "999")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Note not found", decodeMessage(t, rec))
}

func TestDeleteNote_Success(t *testing.T) {
	notes := &mockNoteService{
		deleteFn: func(_ context.Context, userID, noteID int64) error {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(3), noteID)
			return nil
		},
	}
	h := newTestHandler(t, nil, notes)

	req := httptest.NewRequest(http.MethodDelete, "/noteapp/delete-note/3", nil)
	req = withNoteID(withUserID(req, 1), "3")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Note deleted successfully", decodeMessage(t, rec))
}

func TestDeleteNote_NotOwner(t *testing.T) {
	notes := &mockNoteService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return service.ErrNotOwner
		},
	}
	h := newTestHandler(t, nil, notes)

	req := httptest.NewRequest(http.MethodDelete, "/noteapp/delete-note/3", nil)
	req = withNoteID(withUserID(req, 1), "3")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestToggleFavorite_Success(t *testing.T) {
	notes := &mockNoteService{
		toggleFn: func(_ context.Context, userID, noteID int64) (models.Note, error) {
			return models.Note{NoteID: noteID, UserID: userID, Favorite: true}, nil
		},
	}
	h := newTestHandler(t, nil, notes)

	req := httptest.NewRequest(http.MethodPut, "/noteapp/toggle-favorite/3", nil)
	req = withNoteID(withUserID(req, 1), "3")
	rec := httptest.NewRecorder()

	h.toggleFavorite(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.True(t, note.Favorite)
}

func TestToggleFavorite_NotSupported(t *testing.T) {
	notes := &mockNoteService{
		toggleFn: func(_ context.Context, _, _ int64) (models.Note, error) {
			return models.Note{}, store.ErrFavoriteNotSupported
		},
	}
	h := newTestHandler(t, nil, notes)

	req := httptest.NewRequest(http.MethodPut, "/noteapp/toggle-favorite/3", nil)
	req = withNoteID(withUserID(req, 1), "3")
	rec := httptest.NewRecorder()

	h.toggleFavorite(rec, req)

	require.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Contains(t, decodeMessage(t, rec), "schema migration")
}

func TestToggleFavorite_InvalidNoteID(t *testing.T) {
	h := newTestHandler(t, nil, &mockNoteService{})

	req := httptest.NewRequest(http.MethodPut, "/noteapp/toggle-favorite/oops", nil)
	req = withNoteID(withUserID(req, 1), "oops")
	rec := httptest.NewRecorder()

	h.toggleFavorite(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid note ID", decodeMessage(t, rec))
}
