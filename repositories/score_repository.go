package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/pmorten/scoreboard-system/models"
)

var (
	ErrScoreNotFound  = errors.New("score not found")
	ErrScoreDuplicate = errors.New("score already exists for this player, game, and date")
	ErrScoreRefs      = errors.New("score references an unknown player or game")
)

// ScoreFilter narrows ListRange. StartDate is required; empty optional
// fields are ignored.
type ScoreFilter struct {
	StartDate  string
	EndDate    string
	PlayerName string
	GameName   string
}

type ScoreRepository interface {
	Create(ctx context.Context, playerID, gameID int, date string, score int) (int, error)
	UpdateValue(ctx context.Context, playerID, gameID int, date string, score int) (int, error)
	ListRange(ctx context.Context, filter ScoreFilter) ([]models.Score, error)
}

type postgresScoreRepository struct {
	db *sql.DB
}

func NewPostgresScoreRepository(db *sql.DB) ScoreRepository {
	return &postgresScoreRepository{db: db}
}

// Create inserts a score row and returns its id. The uq_player_game_date
// unique constraint is the conflict signal for duplicate submissions.
func (r *postgresScoreRepository) Create(ctx context.Context, playerID, gameID int, date string, score int) (int, error) {
	query := `
		INSERT INTO scores (player_id, game_id, date, score)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, query, playerID, gameID, date, score).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505": // unique_violation
				if pqErr.Constraint == "uq_player_game_date" {
					return 0, ErrScoreDuplicate
				}
			case "23503": // foreign_key_violation
				return 0, ErrScoreRefs
			}
		}
		return 0, err
	}
	return id, nil
}

// UpdateValue overwrites the score for an existing (player, game, date)
// key and returns the row id. Last write wins; there is no version check.
func (r *postgresScoreRepository) UpdateValue(ctx context.Context, playerID, gameID int, date string, score int) (int, error) {
	query := `
		UPDATE scores SET score = $1
		WHERE player_id = $2 AND game_id = $3 AND date = $4
		RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, query, score, playerID, gameID, date).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrScoreNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *postgresScoreRepository) ListRange(ctx context.Context, filter ScoreFilter) ([]models.Score, error) {
	queryBuilder := strings.Builder{}
	queryBuilder.WriteString(`
		SELECT s.id, s.date, p.name, g.name, s.score
		FROM scores s
		JOIN players p ON s.player_id = p.id
		JOIN games g ON s.game_id = g.id
		WHERE s.date >= $1`)

	args := []interface{}{filter.StartDate}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		fmt.Fprintf(&queryBuilder, " AND s.date <= $%d", len(args))
	}
	if filter.PlayerName != "" {
		args = append(args, filter.PlayerName)
		fmt.Fprintf(&queryBuilder, " AND p.name = $%d", len(args))
	}
	if filter.GameName != "" {
		args = append(args, filter.GameName)
		fmt.Fprintf(&queryBuilder, " AND g.name = $%d", len(args))
	}
	queryBuilder.WriteString(" ORDER BY s.date ASC, g.name ASC, p.name ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]models.Score, 0)
	for rows.Next() {
		var score models.Score
		var date time.Time
		if scanErr := rows.Scan(&score.ID, &date, &score.PlayerName, &score.GameName, &score.Score); scanErr != nil {
			return nil, scanErr
		}
		score.Date = date.Format("2006-01-02")
		scores = append(scores, score)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}
