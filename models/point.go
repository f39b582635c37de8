package models

// Point is a derived monthly record. Category is either one of the meta
// categories (Participation, Individual, Combined, Total) or a game name.
type Point struct {
	PlayerName string `json:"playerName"`
	Category   string `json:"category"`
	Points     int    `json:"points"`
}
