// Package client talks to the scoreboard REST API. It is the single
// network boundary of the client-side core: everything above it works on
// plain values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/services"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// VerifyPassword exchanges the shared site password and a player name
// for a session. The token is kept on the client until Logout.
func (c *Client) VerifyPassword(ctx context.Context, password, playerName string) (*models.Session, error) {
	var out struct {
		Token      string `json:"token"`
		PlayerName string `json:"playerName"`
	}
	body := map[string]string{"password": password, "playerName": playerName}
	if err := c.do(ctx, http.MethodPost, "/auth/verify", nil, body, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, ErrInvalidPassword
		}
		return nil, err
	}
	c.token = out.Token
	return &models.Session{PlayerName: out.PlayerName, IssuedAt: time.Now()}, nil
}

// Logout clears the session; the client is anonymous again.
func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) GetPlayers(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	if err := c.do(ctx, http.MethodGet, "/players", nil, nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (c *Client) GetGames(ctx context.Context, playerName string) ([]models.Game, error) {
	var games []models.Game
	path := "/games/" + url.PathEscape(playerName)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *Client) GetScores(ctx context.Context, query services.ScoreQuery) ([]models.Score, error) {
	params := url.Values{}
	params.Set("startDate", query.StartDate)
	if query.EndDate != "" {
		params.Set("endDate", query.EndDate)
	}
	if query.PlayerName != "" {
		params.Set("playerName", query.PlayerName)
	}
	if query.GameName != "" {
		params.Set("gameName", query.GameName)
	}

	var scores []models.Score
	if err := c.do(ctx, http.MethodGet, "/scores", params, nil, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func (c *Client) GetCombinedScores(ctx context.Context, date string) ([]models.Score, error) {
	params := url.Values{"date": {date}}
	var scores []models.Score
	if err := c.do(ctx, http.MethodGet, "/scores/combined", params, nil, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func (c *Client) GetDailyScoreboard(ctx context.Context, date string) (*models.DailyScoreboard, error) {
	params := url.Values{"date": {date}}
	var board models.DailyScoreboard
	if err := c.do(ctx, http.MethodGet, "/scores/daily", params, nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// GetMonthlyScores fetches the month-to-date leaderboard. A month with
// no recorded scores is reported as ErrNoData.
func (c *Client) GetMonthlyScores(ctx context.Context, date string) (*models.MonthlyScoreboard, error) {
	params := url.Values{"date": {date}}
	var board models.MonthlyScoreboard
	if err := c.do(ctx, http.MethodGet, "/scores/monthly", params, nil, &board); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNoData, apiErr.Message)
		}
		return nil, err
	}
	return &board, nil
}

// CreateScore submits a new score. A 409 from the server surfaces as
// ErrDuplicateScore so callers can branch into the update path.
func (c *Client) CreateScore(ctx context.Context, req models.ScoreRequest) (*models.Score, error) {
	var score models.Score
	if err := c.do(ctx, http.MethodPost, "/score", nil, req, &score); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateScore, apiErr.Message)
		}
		return nil, err
	}
	return &score, nil
}

// UpdateScore overwrites the existing score for the request's key.
func (c *Client) UpdateScore(ctx context.Context, req models.ScoreRequest) (*models.Score, error) {
	var score models.Score
	if err := c.do(ctx, http.MethodPut, "/score", nil, req, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

// responseError extracts the server's {"error": ...} envelope, falling
// back to the raw status when the body is not parseable.
func responseError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &APIError{Status: resp.StatusCode, Message: resp.Status}
	}
	return &APIError{Status: resp.StatusCode, Message: envelope.Error}
}

