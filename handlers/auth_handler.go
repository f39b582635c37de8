package handlers

import (
	"errors"
	"net/http"

	"github.com/pmorten/scoreboard-system/middleware"
	"github.com/pmorten/scoreboard-system/services"
)

type AuthHandler struct {
	authService services.AuthService
	jwtSecret   []byte
}

func NewAuthHandler(authService services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtSecret:   []byte(jwtSecret),
	}
}

// VerifyPassword checks the shared site password plus a player name and
// returns a session token for that player.
func (h *AuthHandler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput

	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Password == "" {
		badRequestResponse(w, r, errors.New("password is required"))
		return
	}

	session, err := h.authService.Login(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	token, err := middleware.SignSession(session, h.jwtSecret)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	response := jsonResponse{
		"token":      token,
		"playerName": session.PlayerName,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
