package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pmorten/scoreboard-system/services"
)

type GameHandler struct {
	gameService services.GameService
}

func NewGameHandler(gameService services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

func (h *GameHandler) GetGamesForPlayer(w http.ResponseWriter, r *http.Request) {
	playerName := chi.URLParam(r, "playerName")

	games, err := h.gameService.GetGamesForPlayer(r.Context(), playerName)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, games, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
