package http

import (
	"errors"
	"net/http"

	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/internal/service"
	"github.com/mlevchuk/noteapp/internal/store"
	"github.com/mlevchuk/noteapp/internal/utils"
	"github.com/mlevchuk/noteapp/internal/validators"
)

// messageResponse is the JSON body of every non-validation failure
// (and of the delete acknowledgment).
type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse is the JSON body of a failed input validation,
// listing each violated field.
type validationResponse struct {
	Errors []validators.FieldError `json:"errors"`
}

// errorStatusMap translates every known sentinel error into exactly one
// HTTP status code. Anything unmatched is an unexpected failure → 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoAuthenticatedUser:     http.StatusUnauthorized,
	service.ErrNotOwner:                http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists:   http.StatusConflict,
	store.ErrNoteNotFound:         http.StatusNotFound,
	store.ErrFavoriteNotSupported: http.StatusNotImplemented,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap overrides the user-visible message for sentinels whose
// Error() text is not meant for API consumers. Unmatched errors surface
// their own message.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:      msgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: msgTokenInvalid,
	service.ErrNoAuthenticatedUser:     msgTokenMissing,
	service.ErrNotOwner:                msgNoteForbidden,

	store.ErrEmailAlreadyExists:   msgEmailInUse,
	store.ErrNoteNotFound:         msgNoteNotFound,
	store.ErrFavoriteNotSupported: msgFavoriteMigration,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return err.Error()
}

// writeError maps err onto the API error contract and writes the JSON
// response: per-field details for validation failures, a single message
// for everything else.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if validationErr, ok := validators.AsValidationError(err); ok {
		log.Err(err).Msg("request validation failed")
		utils.WriteJSON(w, validationResponse{Errors: validationErr.Fields}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Err(err).Int("status", status).Msg("request failed")
	}

	utils.WriteJSON(w, messageResponse{Message: messageFromError(err)}, status)
}
