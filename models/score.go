package models

// Score is one player's raw result for one game on one calendar day.
// Dates are YYYY-MM-DD strings everywhere at the API boundary; the
// database key (player_id, game_id, date) is unique.
type Score struct {
	ID         int    `json:"id,omitempty"`
	PlayerName string `json:"playerName"`
	GameName   string `json:"gameName"`
	Date       string `json:"date"`
	Score      int    `json:"score"`
}

// ScoreRequest is the create/update payload keyed by names, the way the
// entry form describes a score.
type ScoreRequest struct {
	PlayerName string `json:"playerName"`
	GameName   string `json:"gameName"`
	Date       string `json:"date"`
	Score      int    `json:"score"`
}
