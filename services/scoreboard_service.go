package services

import (
	"context"
	"fmt"

	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/repositories"
	"github.com/pmorten/scoreboard-system/storage"
	"golang.org/x/sync/errgroup"
)

type ScoreboardService interface {
	GetDailyScoreboard(ctx context.Context, date string) (*models.DailyScoreboard, error)
	GetMonthlyScoreboard(ctx context.Context, date string) (*models.MonthlyScoreboard, error)
	GetCombinedScores(ctx context.Context, date string) ([]models.Score, error)
}

type scoreboardService struct {
	playerRepo repositories.PlayerRepository
	gameRepo   repositories.GameRepository
	scoreRepo  repositories.ScoreRepository
	uploader   storage.FileUploader
}

func NewScoreboardService(
	playerRepo repositories.PlayerRepository,
	gameRepo repositories.GameRepository,
	scoreRepo repositories.ScoreRepository,
	uploader storage.FileUploader,
) ScoreboardService {
	return &scoreboardService{
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		scoreRepo:  scoreRepo,
		uploader:   uploader,
	}
}

// GetDailyScoreboard assembles one day's board: the full roster, the
// game list plus the synthetic Combined game, and that day's raw scores
// followed by the combined scores. Roster and scores are gathered in one
// pass so the response is a single consistent snapshot.
func (s *scoreboardService) GetDailyScoreboard(ctx context.Context, date string) (*models.DailyScoreboard, error) {
	if _, err := parseReportDate(date); err != nil {
		return nil, err
	}

	players, games, err := s.fetchReferenceData(ctx)
	if err != nil {
		return nil, err
	}

	scores, err := s.scoreRepo.ListRange(ctx, repositories.ScoreFilter{StartDate: date, EndDate: date})
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for %s: %w", date, err)
	}

	combined := calculateDailyCombined(scoreMethodsByGame(games), scores, date)

	boardGames := append(games, models.Game{
		ID:          0,
		Name:        CombinedGameName,
		ScoreMethod: models.ScoreMethodHigh,
	})

	return &models.DailyScoreboard{
		Date:    date,
		Players: players,
		Games:   boardGames,
		Scores:  append(scores, combined...),
	}, nil
}

// GetMonthlyScoreboard assembles the month-to-date leaderboard for the
// month containing date. A month with no scores at all is reported as
// ErrNoMonthlyScores, distinct from other failures.
func (s *scoreboardService) GetMonthlyScoreboard(ctx context.Context, date string) (*models.MonthlyScoreboard, error) {
	parsed, err := parseReportDate(date)
	if err != nil {
		return nil, err
	}

	players, games, err := s.fetchReferenceData(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.scoreRepo.ListRange(ctx, repositories.ScoreFilter{
		StartDate: monthStart(parsed),
		EndDate:   date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for month of %s: %w", date, err)
	}
	if len(entries) == 0 {
		return nil, ErrNoMonthlyScores
	}

	gameNames := make([]string, 0, len(games))
	for _, game := range games {
		gameNames = append(gameNames, game.Name)
	}

	return &models.MonthlyScoreboard{
		Players:      players,
		Categories:   MetaCategories,
		Games:        gameNames,
		PlayerPoints: calculateMonthlyPoints(scoreMethodsByGame(games), gameNames, entries),
	}, nil
}

// GetCombinedScores returns just the synthetic Combined scores for one
// day, for players who played every game.
func (s *scoreboardService) GetCombinedScores(ctx context.Context, date string) ([]models.Score, error) {
	if _, err := parseReportDate(date); err != nil {
		return nil, err
	}

	games, err := s.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	scores, err := s.scoreRepo.ListRange(ctx, repositories.ScoreFilter{StartDate: date, EndDate: date})
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for %s: %w", date, err)
	}
	if len(scores) == 0 {
		return []models.Score{}, nil
	}

	return calculateDailyCombined(scoreMethodsByGame(games), scores, date), nil
}

// fetchReferenceData loads the roster and game list concurrently; both
// belong to the same snapshot handed to the stats layer.
func (s *scoreboardService) fetchReferenceData(ctx context.Context) ([]models.Player, []models.Game, error) {
	var (
		players []models.Player
		games   []models.Game
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get players: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get games: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	for i := range players {
		populatePlayerAvatarURL(&players[i], s.uploader)
	}
	return players, games, nil
}

func scoreMethodsByGame(games []models.Game) map[string]models.ScoreMethod {
	methods := make(map[string]models.ScoreMethod, len(games))
	for _, game := range games {
		methods[game.Name] = game.ScoreMethod
	}
	return methods
}
