package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/pmorten/scoreboard-system/gameday"
	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/storage"
)

// parseReportDate validates a YYYY-MM-DD parameter and rejects future
// dates, compared against the game-day zone rather than server-local time.
func parseReportDate(date string) (time.Time, error) {
	if date == "" {
		return time.Time{}, ErrDateRequired
	}
	parsed, err := time.ParseInLocation(gameday.DateFormat, date, gameday.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if date > gameday.Today(time.Now()) {
		return time.Time{}, ErrFutureDate
	}
	return parsed, nil
}

func monthStart(date time.Time) string {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).Format(gameday.DateFormat)
}

func populatePlayerAvatarURL(player *models.Player, uploader storage.FileUploader) {
	if player != nil && player.AvatarKey != nil && *player.AvatarKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*player.AvatarKey)
		if url != "" {
			player.AvatarURL = &url
		}
	}
}

func extensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		parts := strings.Split(contentType, "/")
		if len(parts) == 2 && strings.HasPrefix(parts[0], "image") && parts[1] != "" {
			return "." + strings.Split(parts[1], "+")[0], nil
		}
		return "", fmt.Errorf("could not determine file extension from content type: %q", contentType)
	}
}
