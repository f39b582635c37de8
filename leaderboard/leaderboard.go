// Package leaderboard ranks the player roster by monthly points. Points
// arrive precomputed from the server; this package only looks them up
// and orders players.
package leaderboard

import (
	"sort"

	"github.com/pmorten/scoreboard-system/models"
)

type pointKey struct {
	category string
	player   string
}

// PointTable indexes one reporting period's point records by
// (category, player). It is the single lookup path for both ranking and
// display, so a cell and its rank can never disagree.
type PointTable struct {
	points map[pointKey]int
}

func NewPointTable(points []models.Point) *PointTable {
	table := &PointTable{points: make(map[pointKey]int, len(points))}
	for _, p := range points {
		table.points[pointKey{category: p.Category, player: p.PlayerName}] = p.Points
	}
	return table
}

// Lookup returns a player's points in a category. ok is false when the
// player has no record there: that is "no score", never zero.
func (t *PointTable) Lookup(category, playerName string) (points int, ok bool) {
	points, ok = t.points[pointKey{category: category, player: playerName}]
	return points, ok
}

// Rank orders the roster by descending points in one category. Players
// without a record sort after every player with one, however negative;
// equal values keep their roster order. The result is always a
// permutation of roster, and re-ranking an already ranked list is a
// no-op.
func Rank(category string, roster []models.Player, table *PointTable) []models.Player {
	ranked := make([]models.Player, len(roster))
	copy(ranked, roster)

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, oki := table.Lookup(category, ranked[i].Name)
		vj, okj := table.Lookup(category, ranked[j].Name)
		if oki != okj {
			return oki // present values come before missing ones
		}
		if !oki {
			return false // both missing, keep roster order
		}
		return vi > vj
	})
	return ranked
}
