// Package boards holds the view state for the daily and monthly
// scoreboards. Fetches may overlap when the user flips dates quickly, so
// every fetch takes a sequence token and only the latest-issued one is
// allowed to apply its response. Stale responses are discarded whole.
package boards

import (
	"context"
	"errors"
	"sync"

	"github.com/pmorten/scoreboard-system/client"
	"github.com/pmorten/scoreboard-system/models"
)

// BoardAPI is the slice of the scoreboard client the boards need.
type BoardAPI interface {
	GetDailyScoreboard(ctx context.Context, date string) (*models.DailyScoreboard, error)
	GetMonthlyScores(ctx context.Context, date string) (*models.MonthlyScoreboard, error)
}

// fetchGate issues monotonically increasing tokens and remembers the
// newest one. A response may only land if its token is still the newest,
// which makes "last issued fetch wins" hold regardless of network order.
type fetchGate struct {
	seq uint64
}

func (g *fetchGate) next() uint64 {
	g.seq++
	return g.seq
}

func (g *fetchGate) current(token uint64) bool {
	return token == g.seq
}

// DailyBoard is the state behind the per-day score grid.
type DailyBoard struct {
	api BoardAPI

	mu      sync.Mutex
	gate    fetchGate
	date    string
	board   *models.DailyScoreboard
	loadErr error
}

func NewDailyBoard(api BoardAPI) *DailyBoard {
	return &DailyBoard{api: api}
}

// Load fetches the scoreboard for date and applies it unless a newer
// load was started in the meantime.
func (b *DailyBoard) Load(ctx context.Context, date string) {
	b.mu.Lock()
	token := b.gate.next()
	b.mu.Unlock()

	board, err := b.api.GetDailyScoreboard(ctx, date)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.gate.current(token) {
		return
	}
	b.date = date
	b.board = board
	b.loadErr = err
}

// Snapshot returns the date and board of the most recent applied load.
// The error is non-nil when that load failed; the previous board is
// replaced either way so the view never shows data for the wrong date.
func (b *DailyBoard) Snapshot() (date string, board *models.DailyScoreboard, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.date, b.board, b.loadErr
}

// MonthlyBoard is the state behind the month-to-date leaderboard.
type MonthlyBoard struct {
	api BoardAPI

	mu      sync.Mutex
	gate    fetchGate
	date    string
	board   *models.MonthlyScoreboard
	empty   bool
	loadErr error
}

func NewMonthlyBoard(api BoardAPI) *MonthlyBoard {
	return &MonthlyBoard{api: api}
}

// Load fetches the month-to-date leaderboard for the month containing
// date. A month with no scores is a valid empty state, not a failure.
func (b *MonthlyBoard) Load(ctx context.Context, date string) {
	b.mu.Lock()
	token := b.gate.next()
	b.mu.Unlock()

	board, err := b.api.GetMonthlyScores(ctx, date)
	empty := false
	if errors.Is(err, client.ErrNoData) {
		board, err, empty = nil, nil, true
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.gate.current(token) {
		return
	}
	b.date = date
	b.board = board
	b.empty = empty
	b.loadErr = err
}

// Snapshot returns the state of the most recent applied load. empty is
// true when the month has no recorded scores.
func (b *MonthlyBoard) Snapshot() (date string, board *models.MonthlyScoreboard, empty bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.date, b.board, b.empty, b.loadErr
}
