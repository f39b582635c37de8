package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/repositories"
)

type GameService interface {
	GetGamesForPlayer(ctx context.Context, playerName string) ([]models.Game, error)
	GetAllGames(ctx context.Context) ([]models.Game, error)
}

type gameService struct {
	gameRepo   repositories.GameRepository
	playerRepo repositories.PlayerRepository
}

func NewGameService(gameRepo repositories.GameRepository, playerRepo repositories.PlayerRepository) GameService {
	return &gameService{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
	}
}

func (s *gameService) GetGamesForPlayer(ctx context.Context, playerName string) ([]models.Game, error) {
	name := strings.TrimSpace(playerName)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}

	player, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to look up player %q: %w", name, err)
	}

	games, err := s.gameRepo.ListByPlayerID(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for player %d: %w", player.ID, err)
	}
	return games, nil
}

func (s *gameService) GetAllGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}
	if games == nil {
		return []models.Game{}, nil
	}
	return games, nil
}
