package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/internal/utils"
	"github.com/mlevchuk/noteapp/models"
)

// userIDFromRequest returns the owner identifier the auth middleware stored
// in the request context. The second return value is false when the request
// skipped the middleware somehow; callers must treat that as unauthorized.
func userIDFromRequest(r *http.Request) (int64, bool) {
	return utils.GetUserIDFromContext(r.Context())
}

// noteIDFromRequest parses the {id} URL parameter as a base-10 int64.
func noteIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, messageResponse{Message: msgTokenMissing}, http.StatusUnauthorized)
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, messageResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	createdNote, err := h.services.NoteService.Create(ctx, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, createdNote, http.StatusCreated)
}

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, messageResponse{Message: msgTokenMissing}, http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.List(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, messageResponse{Message: msgTokenMissing}, http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg(msgInvalidNoteID)
		utils.WriteJSON(w, messageResponse{Message: msgInvalidNoteID}, http.StatusBadRequest)
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, messageResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	updatedNote, err := h.services.NoteService.Update(ctx, userID, noteID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedNote, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, messageResponse{Message: msgTokenMissing}, http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg(msgInvalidNoteID)
		utils.WriteJSON(w, messageResponse{Message: msgInvalidNoteID}, http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.Delete(ctx, userID, noteID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, messageResponse{Message: msgNoteDeleted}, http.StatusOK)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(r)
	if !ok {
		utils.WriteJSON(w, messageResponse{Message: msgTokenMissing}, http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg(msgInvalidNoteID)
		utils.WriteJSON(w, messageResponse{Message: msgInvalidNoteID}, http.StatusBadRequest)
		return
	}

	updatedNote, err := h.services.NoteService.ToggleFavorite(ctx, userID, noteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedNote, http.StatusOK)
}
