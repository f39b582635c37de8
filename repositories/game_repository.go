package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pmorten/scoreboard-system/models"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	GetAll(ctx context.Context) ([]models.Game, error)
	GetByName(ctx context.Context, name string) (*models.Game, error)
	ListByPlayerID(ctx context.Context, playerID int) ([]models.Game, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) GetAll(ctx context.Context) ([]models.Game, error) {
	query := `
		SELECT id, name, score_method
		FROM games
		ORDER BY name ASC`

	return r.queryGames(ctx, query)
}

func (r *postgresGameRepository) GetByName(ctx context.Context, name string) (*models.Game, error) {
	query := `
		SELECT id, name, score_method
		FROM games
		WHERE name = $1`

	game := &models.Game{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&game.ID, &game.Name, &game.ScoreMethod)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

// ListByPlayerID returns the games a player is signed up for, via the
// player_games link table.
func (r *postgresGameRepository) ListByPlayerID(ctx context.Context, playerID int) ([]models.Game, error) {
	query := `
		SELECT g.id, g.name, g.score_method
		FROM games g
		JOIN player_games pg ON pg.game_id = g.id
		WHERE pg.player_id = $1
		ORDER BY g.name ASC`

	return r.queryGames(ctx, query, playerID)
}

func (r *postgresGameRepository) queryGames(ctx context.Context, query string, args ...interface{}) ([]models.Game, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var game models.Game
		if scanErr := rows.Scan(&game.ID, &game.Name, &game.ScoreMethod); scanErr != nil {
			return nil, scanErr
		}
		games = append(games, game)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}
