package leaderboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pmorten/scoreboard-system/leaderboard"
	"github.com/pmorten/scoreboard-system/models"
	"github.com/pmorten/scoreboard-system/services"
)

func roster(names ...string) []models.Player {
	players := make([]models.Player, len(names))
	for i, name := range names {
		players[i] = models.Player{ID: i + 1, Name: name}
	}
	return players
}

func names(players []models.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

func TestLookupDistinguishesMissingFromZero(t *testing.T) {
	table := leaderboard.NewPointTable([]models.Point{
		{PlayerName: "alice", Category: services.CategoryTotal, Points: 0},
	})

	points, ok := table.Lookup(services.CategoryTotal, "alice")
	assert.True(t, ok)
	assert.Equal(t, 0, points)

	_, ok = table.Lookup(services.CategoryTotal, "bob")
	assert.False(t, ok)
}

func TestRankNegativeScoreBeatsMissing(t *testing.T) {
	table := leaderboard.NewPointTable([]models.Point{
		{PlayerName: "alice", Category: services.CategoryTotal, Points: 10},
		{PlayerName: "carol", Category: services.CategoryTotal, Points: -2},
	})

	ranked := leaderboard.Rank(services.CategoryTotal, roster("alice", "bob", "carol"), table)
	assert.Equal(t, []string{"alice", "carol", "bob"}, names(ranked))
}

func TestRankTiesKeepRosterOrder(t *testing.T) {
	table := leaderboard.NewPointTable([]models.Point{
		{PlayerName: "bob", Category: services.CategoryIndividual, Points: 3},
		{PlayerName: "alice", Category: services.CategoryIndividual, Points: 3},
		{PlayerName: "carol", Category: services.CategoryIndividual, Points: 5},
	})

	ranked := leaderboard.Rank(services.CategoryIndividual, roster("alice", "bob", "carol"), table)
	assert.Equal(t, []string{"carol", "alice", "bob"}, names(ranked))
}

func TestRankUnknownCategoryKeepsRosterOrder(t *testing.T) {
	table := leaderboard.NewPointTable([]models.Point{
		{PlayerName: "alice", Category: services.CategoryTotal, Points: 10},
	})

	ranked := leaderboard.Rank("Backgammon", roster("carol", "alice", "bob"), table)
	assert.Equal(t, []string{"carol", "alice", "bob"}, names(ranked))
}

func TestRankIsPermutationOfRoster(t *testing.T) {
	table := leaderboard.NewPointTable([]models.Point{
		{PlayerName: "bob", Category: services.CategoryCombined, Points: 2},
	})

	players := roster("alice", "bob", "carol", "dave")
	ranked := leaderboard.Rank(services.CategoryCombined, players, table)

	assert.Len(t, ranked, len(players))
	assert.ElementsMatch(t, players, ranked)
	// The input roster is left untouched.
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, names(players))
}

func TestRankIsIdempotent(t *testing.T) {
	table := leaderboard.NewPointTable([]models.Point{
		{PlayerName: "alice", Category: services.CategoryTotal, Points: 4},
		{PlayerName: "bob", Category: services.CategoryTotal, Points: 7},
		{PlayerName: "carol", Category: services.CategoryTotal, Points: 4},
	})

	once := leaderboard.Rank(services.CategoryTotal, roster("alice", "bob", "carol", "dave"), table)
	twice := leaderboard.Rank(services.CategoryTotal, once, table)
	assert.Equal(t, once, twice)
}
