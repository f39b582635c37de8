package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/pmorten/scoreboard-system/models"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerNameConflict = errors.New("player name conflict")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetAll(ctx context.Context) ([]models.Player, error)
	GetByName(ctx context.Context, name string) (*models.Player, error)
	UpdateAvatarKey(ctx context.Context, playerID int, key *string) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (name)
		VALUES ($1)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, player.Name).Scan(&player.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "players_name_key" {
			return ErrPlayerNameConflict
		}
		return err
	}
	return nil
}

func (r *postgresPlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	query := `
		SELECT id, name, avatar_key
		FROM players
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		if scanErr := rows.Scan(&player.ID, &player.Name, &player.AvatarKey); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, player)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) GetByName(ctx context.Context, name string) (*models.Player, error) {
	query := `
		SELECT id, name, avatar_key
		FROM players
		WHERE name = $1`

	player := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&player.ID, &player.Name, &player.AvatarKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (r *postgresPlayerRepository) UpdateAvatarKey(ctx context.Context, playerID int, key *string) error {
	query := `UPDATE players SET avatar_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, key, playerID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}
