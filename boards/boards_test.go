package boards_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmorten/scoreboard-system/boards"
	"github.com/pmorten/scoreboard-system/client"
	"github.com/pmorten/scoreboard-system/models"
)

type fakeBoardAPI struct {
	dailyFn   func(ctx context.Context, date string) (*models.DailyScoreboard, error)
	monthlyFn func(ctx context.Context, date string) (*models.MonthlyScoreboard, error)
}

func (f *fakeBoardAPI) GetDailyScoreboard(ctx context.Context, date string) (*models.DailyScoreboard, error) {
	return f.dailyFn(ctx, date)
}

func (f *fakeBoardAPI) GetMonthlyScores(ctx context.Context, date string) (*models.MonthlyScoreboard, error) {
	return f.monthlyFn(ctx, date)
}

func TestDailyBoardLoad(t *testing.T) {
	api := &fakeBoardAPI{
		dailyFn: func(ctx context.Context, date string) (*models.DailyScoreboard, error) {
			return &models.DailyScoreboard{Date: date}, nil
		},
	}
	board := boards.NewDailyBoard(api)

	board.Load(context.Background(), "2023-09-01")

	date, got, err := board.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "2023-09-01", date)
	require.NotNil(t, got)
	assert.Equal(t, "2023-09-01", got.Date)
}

func TestDailyBoardStaleResponseIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	api := &fakeBoardAPI{
		dailyFn: func(ctx context.Context, date string) (*models.DailyScoreboard, error) {
			if date == "2023-09-01" {
				close(started)
				<-release
			}
			return &models.DailyScoreboard{Date: date}, nil
		},
	}
	board := boards.NewDailyBoard(api)

	// The first load stalls in flight while a second one starts and
	// finishes. The first response arrives last but must not apply.
	done := make(chan struct{})
	go func() {
		defer close(done)
		board.Load(context.Background(), "2023-09-01")
	}()
	<-started
	board.Load(context.Background(), "2023-09-02")
	close(release)
	<-done

	date, got, err := board.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "2023-09-02", date)
	require.NotNil(t, got)
	assert.Equal(t, "2023-09-02", got.Date)
}

func TestDailyBoardLoadErrorReplacesBoard(t *testing.T) {
	loadErr := error(nil)
	api := &fakeBoardAPI{
		dailyFn: func(ctx context.Context, date string) (*models.DailyScoreboard, error) {
			if loadErr != nil {
				return nil, loadErr
			}
			return &models.DailyScoreboard{Date: date}, nil
		},
	}
	board := boards.NewDailyBoard(api)
	board.Load(context.Background(), "2023-09-01")

	loadErr = errors.New("connection refused")
	board.Load(context.Background(), "2023-09-02")

	date, got, err := board.Snapshot()
	assert.Error(t, err)
	assert.Equal(t, "2023-09-02", date)
	assert.Nil(t, got, "a failed load must not leave the previous date's board visible")
}

func TestMonthlyBoardEmptyMonthIsNotAnError(t *testing.T) {
	api := &fakeBoardAPI{
		monthlyFn: func(ctx context.Context, date string) (*models.MonthlyScoreboard, error) {
			return nil, fmt.Errorf("%w: no scores recorded", client.ErrNoData)
		},
	}
	board := boards.NewMonthlyBoard(api)

	board.Load(context.Background(), "2023-09-01")

	date, got, empty, err := board.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "2023-09-01", date)
	assert.Nil(t, got)
	assert.True(t, empty)
}

func TestMonthlyBoardHardErrorIsReported(t *testing.T) {
	api := &fakeBoardAPI{
		monthlyFn: func(ctx context.Context, date string) (*models.MonthlyScoreboard, error) {
			return nil, errors.New("internal server error")
		},
	}
	board := boards.NewMonthlyBoard(api)

	board.Load(context.Background(), "2023-09-01")

	_, _, empty, err := board.Snapshot()
	assert.Error(t, err)
	assert.False(t, empty)
}

func TestMonthlyBoardStaleResponseIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	api := &fakeBoardAPI{
		monthlyFn: func(ctx context.Context, date string) (*models.MonthlyScoreboard, error) {
			if date == "2023-08-15" {
				close(started)
				<-release
			}
			return &models.MonthlyScoreboard{Categories: []string{date}}, nil
		},
	}
	board := boards.NewMonthlyBoard(api)

	done := make(chan struct{})
	go func() {
		defer close(done)
		board.Load(context.Background(), "2023-08-15")
	}()
	<-started
	board.Load(context.Background(), "2023-09-15")
	close(release)
	<-done

	date, got, _, err := board.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "2023-09-15", date)
	require.NotNil(t, got)
	assert.Equal(t, []string{"2023-09-15"}, got.Categories)
}
