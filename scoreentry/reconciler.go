// Package scoreentry drives the create-vs-update decision for score
// submission. A submission starts as a create; when the server reports a
// duplicate the form flips into update mode with everything the user
// typed intact, so a correction is one more submit away.
package scoreentry

import (
	"context"
	"errors"
	"time"

	"github.com/pmorten/scoreboard-system/client"
	"github.com/pmorten/scoreboard-system/gameday"
	"github.com/pmorten/scoreboard-system/models"
)

// ScoreAPI is the slice of the scoreboard client the reconciler needs.
type ScoreAPI interface {
	CreateScore(ctx context.Context, req models.ScoreRequest) (*models.Score, error)
	UpdateScore(ctx context.Context, req models.ScoreRequest) (*models.Score, error)
}

type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

type ResultKind string

const (
	ResultCreated   ResultKind = "created"
	ResultUpdated   ResultKind = "updated"
	ResultDuplicate ResultKind = "duplicate"
	ResultError     ResultKind = "error"
)

// Result is the tagged outcome of a submission; callers branch on Kind,
// never on error types.
type Result struct {
	Kind    ResultKind
	Score   *models.Score
	Message string
}

const fallbackErrorMessage = "failed to save score"

// Fields is the editable state of the entry form.
type Fields struct {
	Date  string
	Game  string
	Score int
}

type Reconciler struct {
	api        ScoreAPI
	playerName string
	now        func() time.Time

	mode   Mode
	fields Fields
}

// New builds a reconciler for one player's entry form, prefilled with
// the current game day. now may be nil for the wall clock.
func New(api ScoreAPI, playerName string, now func() time.Time) *Reconciler {
	if now == nil {
		now = time.Now
	}
	r := &Reconciler{
		api:        api,
		playerName: playerName,
		now:        now,
	}
	r.reset()
	return r
}

func (r *Reconciler) Mode() Mode {
	return r.mode
}

func (r *Reconciler) Fields() Fields {
	return r.fields
}

// SetDate changes the target date. In update mode this describes a
// different entry, so the form reverts to create.
func (r *Reconciler) SetDate(date string) {
	r.fields.Date = date
	r.mode = ModeCreate
}

// SetGame changes the target game and, like SetDate, reverts to create.
func (r *Reconciler) SetGame(game string) {
	r.fields.Game = game
	r.mode = ModeCreate
}

// SetScore changes only the value being corrected; it keeps the current
// mode so a duplicate can be fixed and resubmitted.
func (r *Reconciler) SetScore(score int) {
	r.fields.Score = score
}

// Submit sends the entered fields. The entered values survive every
// failure path; only a successful create or update clears them.
func (r *Reconciler) Submit(ctx context.Context) Result {
	req := models.ScoreRequest{
		PlayerName: r.playerName,
		GameName:   r.fields.Game,
		Date:       r.fields.Date,
		Score:      r.fields.Score,
	}

	if r.mode == ModeUpdate {
		score, err := r.api.UpdateScore(ctx, req)
		if err != nil {
			return Result{Kind: ResultError, Message: errorMessage(err)}
		}
		r.reset()
		return Result{Kind: ResultUpdated, Score: score}
	}

	score, err := r.api.CreateScore(ctx, req)
	if err != nil {
		if errors.Is(err, client.ErrDuplicateScore) {
			r.mode = ModeUpdate
			return Result{Kind: ResultDuplicate, Message: errorMessage(err)}
		}
		return Result{Kind: ResultError, Message: errorMessage(err)}
	}
	r.reset()
	return Result{Kind: ResultCreated, Score: score}
}

func (r *Reconciler) reset() {
	r.fields = Fields{Date: gameday.Resolve(r.now())}
	r.mode = ModeCreate
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return fallbackErrorMessage
	}
	return err.Error()
}
