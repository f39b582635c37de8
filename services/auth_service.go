package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/repositories"
	"golang.org/x/crypto/bcrypt"
)

const sessionLifetime = 24 * time.Hour

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*models.Session, error)
}

type LoginInput struct {
	Password   string `json:"password"`
	PlayerName string `json:"playerName"`
}

type authService struct {
	playerRepo       repositories.PlayerRepository
	sitePasswordHash []byte
}

func NewAuthService(playerRepo repositories.PlayerRepository, sitePasswordHash string) AuthService {
	return &authService{
		playerRepo:       playerRepo,
		sitePasswordHash: []byte(sitePasswordHash),
	}
}

// Login checks the shared site password and that the chosen player
// exists, then returns a fresh session. The session is the only login
// state in the system; it travels with the caller and is dropped at
// logout.
func (s *authService) Login(ctx context.Context, input LoginInput) (*models.Session, error) {
	playerName := strings.TrimSpace(input.PlayerName)
	if playerName == "" {
		return nil, ErrPlayerNameRequired
	}

	err := bcrypt.CompareHashAndPassword(s.sitePasswordHash, []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	player, err := s.playerRepo.GetByName(ctx, playerName)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to look up player %q: %w", playerName, err)
	}

	now := time.Now()
	return &models.Session{
		PlayerName: player.Name,
		IssuedAt:   now,
		ExpiresAt:  now.Add(sessionLifetime),
	}, nil
}
