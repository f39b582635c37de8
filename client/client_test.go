package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmorten/scoreboard-system/client"
	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/services"
)

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func TestCreateScoreConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusConflict, "score already exists for this player, game, and date")
	}))
	defer server.Close()

	c := client.New(server.URL)
	_, err := c.CreateScore(context.Background(), models.ScoreRequest{
		PlayerName: "phil", GameName: "Sudoku", Date: "2023-09-01", Score: 240,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrDuplicateScore)
	assert.Contains(t, err.Error(), "score already exists")
}

func TestCreateScoreSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/score", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.ScoreRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "phil", req.PlayerName)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Score{
			ID: 7, PlayerName: req.PlayerName, GameName: req.GameName, Date: req.Date, Score: req.Score,
		})
	}))
	defer server.Close()

	c := client.New(server.URL)
	score, err := c.CreateScore(context.Background(), models.ScoreRequest{
		PlayerName: "phil", GameName: "Sudoku", Date: "2023-09-01", Score: 240,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, score.ID)
	assert.Equal(t, 240, score.Score)
}

func TestGetMonthlyScoresNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2023-09-15", r.URL.Query().Get("date"))
		writeError(w, http.StatusNotFound, "no scores recorded for this month")
	}))
	defer server.Close()

	c := client.New(server.URL)
	_, err := c.GetMonthlyScores(context.Background(), "2023-09-15")

	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrNoData)
}

func TestVerifyPasswordStoresToken(t *testing.T) {
	var gotAuth []string
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "tok123", "playerName": "phil"})
	})
	mux.HandleFunc("/players", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Player{})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := client.New(server.URL)

	session, err := c.VerifyPassword(context.Background(), "hunter2", "phil")
	require.NoError(t, err)
	assert.Equal(t, "phil", session.PlayerName)

	_, err = c.GetPlayers(context.Background())
	require.NoError(t, err)

	c.Logout()
	_, err = c.GetPlayers(context.Background())
	require.NoError(t, err)

	require.Len(t, gotAuth, 2)
	assert.Equal(t, "Bearer tok123", gotAuth[0])
	assert.Empty(t, gotAuth[1])
}

func TestVerifyPasswordRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "invalid password")
	}))
	defer server.Close()

	c := client.New(server.URL)
	_, err := c.VerifyPassword(context.Background(), "wrong", "phil")
	assert.ErrorIs(t, err, client.ErrInvalidPassword)
}

func TestErrorEnvelopeIsSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "something broke")
	}))
	defer server.Close()

	c := client.New(server.URL)
	_, err := c.GetPlayers(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "something broke", apiErr.Message)
}

func TestUnparseableErrorBodyFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	c := client.New(server.URL)
	_, err := c.GetPlayers(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestGetScoresQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2023-09-01", q.Get("startDate"))
		assert.Equal(t, "2023-09-30", q.Get("endDate"))
		assert.Equal(t, "phil", q.Get("playerName"))
		assert.False(t, q.Has("gameName"))
		json.NewEncoder(w).Encode([]models.Score{})
	}))
	defer server.Close()

	c := client.New(server.URL)
	_, err := c.GetScores(context.Background(), services.ScoreQuery{
		StartDate:  "2023-09-01",
		EndDate:    "2023-09-30",
		PlayerName: "phil",
	})
	require.NoError(t, err)
}
