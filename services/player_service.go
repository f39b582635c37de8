package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/repositories"
	"github.com/pmorten/scoreboard-system/storage"
)

type PlayerService interface {
	GetAllPlayers(ctx context.Context) ([]models.Player, error)
	UploadAvatar(ctx context.Context, playerName string, file io.Reader, contentType string) (*models.Player, error)
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader // nil when avatar storage is not configured
}

func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		uploader:   uploader,
	}
}

func (s *playerService) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	for i := range players {
		populatePlayerAvatarURL(&players[i], s.uploader)
	}
	return players, nil
}

func (s *playerService) UploadAvatar(ctx context.Context, playerName string, file io.Reader, contentType string) (*models.Player, error) {
	if s.uploader == nil {
		return nil, ErrAvatarsDisabled
	}

	player, err := s.playerRepo.GetByName(ctx, playerName)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to look up player %q: %w", playerName, err)
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAvatarType, err)
	}

	key := fmt.Sprintf("avatars/players/%d%s", player.ID, ext)
	oldKey := player.AvatarKey

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar for player %d: %w", player.ID, err)
	}

	if err := s.playerRepo.UpdateAvatarKey(ctx, player.ID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store avatar key for player %d: %w", player.ID, err)
	}

	// A replaced avatar with a different extension leaves the old object
	// behind; best-effort delete.
	if oldKey != nil && *oldKey != "" && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	player.AvatarKey = &result.Key
	populatePlayerAvatarURL(player, s.uploader)
	return player, nil
}
