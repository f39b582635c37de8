package models

// ScoreMethod doubles as the t-score multiplier: positive when a higher
// raw score is better, negative when a lower one is.
type ScoreMethod int

const (
	ScoreMethodHigh ScoreMethod = 100
	ScoreMethodLow  ScoreMethod = -100
)

type Game struct {
	ID          int         `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	ScoreMethod ScoreMethod `json:"scoreMethod" db:"score_method"`
}
