package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pmorten/scoreboard-system/middleware"
	"github.com/pmorten/scoreboard-system/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(playerService services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

func (h *PlayerHandler) GetAllPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.GetAllPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, players, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadAvatar stores a new avatar image for the logged-in player.
// Players can only change their own avatar.
func (h *PlayerHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.SessionFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "login required to upload an avatar")
		return
	}

	playerName := chi.URLParam(r, "playerName")
	if playerName == "" {
		badRequestResponse(w, r, errors.New("player name is required"))
		return
	}
	if playerName != session.PlayerName {
		forbiddenResponse(w, r, "players can only change their own avatar")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get avatar file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content-type header is required for avatar"))
		return
	}

	player, err := h.playerService.UploadAvatar(r.Context(), playerName, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
