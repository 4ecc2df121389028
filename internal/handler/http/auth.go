package http

import (
	"encoding/json"
	"net/http"

	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/internal/utils"
	"github.com/mlevchuk/noteapp/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, messageResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, messageResponse{Message: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	loginResponse, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("email", loginResponse.Email).Msg("user successfully logged in")

	utils.WriteJSON(w, loginResponse, http.StatusOK)
}
