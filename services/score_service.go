package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/repositories"
)

// ScoreNotifier receives score changes for live scoreboard pushes.
type ScoreNotifier interface {
	ScoreCreated(score models.Score)
	ScoreUpdated(score models.Score)
}

// ScoreQuery filters ListScores. StartDate is required.
type ScoreQuery struct {
	StartDate  string
	EndDate    string
	PlayerName string
	GameName   string
}

type ScoreService interface {
	SubmitScore(ctx context.Context, req models.ScoreRequest) (*models.Score, error)
	UpdateScore(ctx context.Context, req models.ScoreRequest) (*models.Score, error)
	ListScores(ctx context.Context, query ScoreQuery) ([]models.Score, error)
}

type scoreService struct {
	scoreRepo  repositories.ScoreRepository
	playerRepo repositories.PlayerRepository
	gameRepo   repositories.GameRepository
	notifier   ScoreNotifier // nil disables live pushes
}

func NewScoreService(
	scoreRepo repositories.ScoreRepository,
	playerRepo repositories.PlayerRepository,
	gameRepo repositories.GameRepository,
	notifier ScoreNotifier,
) ScoreService {
	return &scoreService{
		scoreRepo:  scoreRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		notifier:   notifier,
	}
}

// SubmitScore records a new score. A second submission for the same
// (player, game, date) key surfaces as ErrScoreDuplicate so callers can
// branch into the update path.
func (s *scoreService) SubmitScore(ctx context.Context, req models.ScoreRequest) (*models.Score, error) {
	playerID, gameID, err := s.resolveRequest(ctx, &req)
	if err != nil {
		return nil, err
	}

	id, err := s.scoreRepo.Create(ctx, playerID, gameID, req.Date, req.Score)
	if err != nil {
		if errors.Is(err, repositories.ErrScoreDuplicate) {
			return nil, ErrScoreDuplicate
		}
		return nil, fmt.Errorf("failed to create score: %w", err)
	}

	score := requestToScore(id, req)
	if s.notifier != nil {
		s.notifier.ScoreCreated(score)
	}
	return &score, nil
}

// UpdateScore overwrites the score for an existing key. Last write wins;
// concurrent updates are not serialized beyond the single-row UPDATE.
func (s *scoreService) UpdateScore(ctx context.Context, req models.ScoreRequest) (*models.Score, error) {
	playerID, gameID, err := s.resolveRequest(ctx, &req)
	if err != nil {
		return nil, err
	}

	id, err := s.scoreRepo.UpdateValue(ctx, playerID, gameID, req.Date, req.Score)
	if err != nil {
		if errors.Is(err, repositories.ErrScoreNotFound) {
			return nil, ErrScoreNotFound
		}
		return nil, fmt.Errorf("failed to update score: %w", err)
	}

	score := requestToScore(id, req)
	if s.notifier != nil {
		s.notifier.ScoreUpdated(score)
	}
	return &score, nil
}

func (s *scoreService) ListScores(ctx context.Context, query ScoreQuery) ([]models.Score, error) {
	if _, err := parseReportDate(query.StartDate); err != nil {
		return nil, err
	}
	if query.EndDate != "" {
		if _, err := parseReportDate(query.EndDate); err != nil {
			return nil, err
		}
	}

	scores, err := s.scoreRepo.ListRange(ctx, repositories.ScoreFilter{
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
		PlayerName: query.PlayerName,
		GameName:   query.GameName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	return scores, nil
}

// resolveRequest validates the request and translates its names into
// database ids.
func (s *scoreService) resolveRequest(ctx context.Context, req *models.ScoreRequest) (playerID, gameID int, err error) {
	req.PlayerName = strings.TrimSpace(req.PlayerName)
	req.GameName = strings.TrimSpace(req.GameName)
	if req.PlayerName == "" {
		return 0, 0, ErrPlayerNameRequired
	}
	if req.GameName == "" {
		return 0, 0, ErrGameNameRequired
	}
	if req.Score < 0 {
		return 0, 0, ErrNegativeScore
	}
	if _, err := parseReportDate(req.Date); err != nil {
		return 0, 0, err
	}

	player, err := s.playerRepo.GetByName(ctx, req.PlayerName)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return 0, 0, ErrPlayerNotFound
		}
		return 0, 0, fmt.Errorf("failed to look up player %q: %w", req.PlayerName, err)
	}

	game, err := s.gameRepo.GetByName(ctx, req.GameName)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return 0, 0, ErrGameNotFound
		}
		return 0, 0, fmt.Errorf("failed to look up game %q: %w", req.GameName, err)
	}

	return player.ID, game.ID, nil
}

func requestToScore(id int, req models.ScoreRequest) models.Score {
	return models.Score{
		ID:         id,
		PlayerName: req.PlayerName,
		GameName:   req.GameName,
		Date:       req.Date,
		Score:      req.Score,
	}
}
