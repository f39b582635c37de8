package handlers

import (
	"net/http"

	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/services"
)

type ScoreHandler struct {
	scoreService services.ScoreService
}

func NewScoreHandler(scoreService services.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// CreateScore records a new score; an existing (player, game, date) key
// answers 409 so the client can switch to its update path.
func (h *ScoreHandler) CreateScore(w http.ResponseWriter, r *http.Request) {
	var req models.ScoreRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	score, err := h.scoreService.SubmitScore(r.Context(), req)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, score, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScoreHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	var req models.ScoreRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	score, err := h.scoreService.UpdateScore(r.Context(), req)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, score, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScoreHandler) ListScores(w http.ResponseWriter, r *http.Request) {
	query := services.ScoreQuery{
		StartDate:  r.URL.Query().Get("startDate"),
		EndDate:    r.URL.Query().Get("endDate"),
		PlayerName: r.URL.Query().Get("playerName"),
		GameName:   r.URL.Query().Get("gameName"),
	}

	scores, err := h.scoreService.ListScores(r.Context(), query)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, scores, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
