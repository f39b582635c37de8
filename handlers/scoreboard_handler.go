package handlers

import (
	"net/http"

	"github.com/pmorten/scoreboard-system/services"
)

type ScoreboardHandler struct {
	scoreboardService services.ScoreboardService
}

func NewScoreboardHandler(scoreboardService services.ScoreboardService) *ScoreboardHandler {
	return &ScoreboardHandler{scoreboardService: scoreboardService}
}

func (h *ScoreboardHandler) GetDailyScoreboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	board, err := h.scoreboardService.GetDailyScoreboard(r.Context(), date)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, board, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScoreboardHandler) GetMonthlyScoreboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	board, err := h.scoreboardService.GetMonthlyScoreboard(r.Context(), date)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, board, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScoreboardHandler) GetCombinedScores(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	scores, err := h.scoreboardService.GetCombinedScores(r.Context(), date)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, scores, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
