package scoreentry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmorten/scoreboard-system/client"
	"github.com/pmorten/scoreboard-system/gameday"
	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/scoreentry"
)

type fakeScoreAPI struct {
	createErr   error
	updateErr   error
	createCalls []models.ScoreRequest
	updateCalls []models.ScoreRequest
}

func (f *fakeScoreAPI) CreateScore(ctx context.Context, req models.ScoreRequest) (*models.Score, error) {
	f.createCalls = append(f.createCalls, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	score := models.Score{ID: 1, PlayerName: req.PlayerName, GameName: req.GameName, Date: req.Date, Score: req.Score}
	return &score, nil
}

func (f *fakeScoreAPI) UpdateScore(ctx context.Context, req models.ScoreRequest) (*models.Score, error) {
	f.updateCalls = append(f.updateCalls, req)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	score := models.Score{ID: 1, PlayerName: req.PlayerName, GameName: req.GameName, Date: req.Date, Score: req.Score}
	return &score, nil
}

// noon on a Friday, well clear of every rollover
func fixedNow() time.Time {
	return time.Date(2023, time.September, 1, 12, 0, 0, 0, gameday.Location())
}

func TestNewSeedsCurrentGameDay(t *testing.T) {
	r := scoreentry.New(&fakeScoreAPI{}, "phil", fixedNow)

	assert.Equal(t, scoreentry.ModeCreate, r.Mode())
	assert.Equal(t, "2023-09-01", r.Fields().Date)
}

func TestSubmitCreatesAndResets(t *testing.T) {
	api := &fakeScoreAPI{}
	r := scoreentry.New(api, "phil", fixedNow)
	r.SetGame("Sudoku")
	r.SetScore(240)

	result := r.Submit(context.Background())

	assert.Equal(t, scoreentry.ResultCreated, result.Kind)
	require.NotNil(t, result.Score)
	assert.Equal(t, 240, result.Score.Score)

	require.Len(t, api.createCalls, 1)
	assert.Equal(t, models.ScoreRequest{
		PlayerName: "phil",
		GameName:   "Sudoku",
		Date:       "2023-09-01",
		Score:      240,
	}, api.createCalls[0])

	// Success clears the form back to a fresh create.
	assert.Equal(t, scoreentry.ModeCreate, r.Mode())
	assert.Equal(t, scoreentry.Fields{Date: "2023-09-01"}, r.Fields())
}

func TestDuplicateFlipsToUpdate(t *testing.T) {
	api := &fakeScoreAPI{
		createErr: fmt.Errorf("%w: already recorded", client.ErrDuplicateScore),
	}
	r := scoreentry.New(api, "phil", fixedNow)
	r.SetGame("Sudoku")
	r.SetScore(240)

	result := r.Submit(context.Background())
	assert.Equal(t, scoreentry.ResultDuplicate, result.Kind)
	assert.Equal(t, scoreentry.ModeUpdate, r.Mode())

	// The typed values survive so a correction is one more submit away.
	r.SetScore(225)
	result = r.Submit(context.Background())

	assert.Equal(t, scoreentry.ResultUpdated, result.Kind)
	require.Len(t, api.updateCalls, 1)
	assert.Equal(t, models.ScoreRequest{
		PlayerName: "phil",
		GameName:   "Sudoku",
		Date:       "2023-09-01",
		Score:      225,
	}, api.updateCalls[0])
	require.Len(t, api.createCalls, 1)
	assert.Equal(t, scoreentry.ModeCreate, r.Mode())
}

func TestTransientErrorPreservesEverything(t *testing.T) {
	api := &fakeScoreAPI{createErr: errors.New("connection refused")}
	r := scoreentry.New(api, "phil", fixedNow)
	r.SetGame("Crossword")
	r.SetScore(95)

	result := r.Submit(context.Background())
	assert.Equal(t, scoreentry.ResultError, result.Kind)
	assert.Equal(t, "connection refused", result.Message)
	assert.Equal(t, scoreentry.ModeCreate, r.Mode())

	// Retrying sends the exact same request.
	api.createErr = nil
	r.Submit(context.Background())
	require.Len(t, api.createCalls, 2)
	assert.Equal(t, api.createCalls[0], api.createCalls[1])
}

func TestUpdateFailureKeepsUpdateMode(t *testing.T) {
	api := &fakeScoreAPI{
		createErr: client.ErrDuplicateScore,
		updateErr: errors.New("timeout"),
	}
	r := scoreentry.New(api, "phil", fixedNow)
	r.SetGame("Sudoku")
	r.SetScore(240)

	r.Submit(context.Background())
	result := r.Submit(context.Background())

	assert.Equal(t, scoreentry.ResultError, result.Kind)
	assert.Equal(t, scoreentry.ModeUpdate, r.Mode())
	assert.Equal(t, "Sudoku", r.Fields().Game)
	assert.Equal(t, 240, r.Fields().Score)
}

func TestChangingKeyFieldsRevertsToCreate(t *testing.T) {
	api := &fakeScoreAPI{createErr: client.ErrDuplicateScore}
	r := scoreentry.New(api, "phil", fixedNow)
	r.SetGame("Sudoku")
	r.SetScore(240)
	r.Submit(context.Background())
	require.Equal(t, scoreentry.ModeUpdate, r.Mode())

	// A different game means a different entry, not a correction.
	r.SetGame("Crossword")
	assert.Equal(t, scoreentry.ModeCreate, r.Mode())

	api.createErr = nil
	result := r.Submit(context.Background())
	assert.Equal(t, scoreentry.ResultCreated, result.Kind)
	require.Len(t, api.createCalls, 2)
	assert.Equal(t, "Crossword", api.createCalls[1].GameName)
	assert.Empty(t, api.updateCalls)
}

func TestSetDateRevertsToCreate(t *testing.T) {
	api := &fakeScoreAPI{createErr: client.ErrDuplicateScore}
	r := scoreentry.New(api, "phil", fixedNow)
	r.SetGame("Sudoku")
	r.Submit(context.Background())
	require.Equal(t, scoreentry.ModeUpdate, r.Mode())

	r.SetDate("2023-08-31")
	assert.Equal(t, scoreentry.ModeCreate, r.Mode())
	assert.Equal(t, "2023-08-31", r.Fields().Date)
}

func TestBlankErrorGetsFallbackMessage(t *testing.T) {
	api := &fakeScoreAPI{createErr: errors.New("")}
	r := scoreentry.New(api, "phil", fixedNow)
	r.SetGame("Sudoku")

	result := r.Submit(context.Background())
	assert.Equal(t, scoreentry.ResultError, result.Kind)
	assert.Equal(t, "failed to save score", result.Message)
}
