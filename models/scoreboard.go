package models

type DailyScoreboard struct {
	Date    string   `json:"date"`
	Players []Player `json:"players"`
	Games   []Game   `json:"games"`
	Scores  []Score  `json:"scores"`
}

type MonthlyScoreboard struct {
	Players      []Player `json:"players"`
	Categories   []string `json:"categories"`
	Games        []string `json:"games"`
	PlayerPoints []Point  `json:"playerPoints"`
}
