package services

import (
	"math"
	"sort"

	"github.com/pmorten/scoreboard-system/models"
)

// Scores for different games live on different scales, so everything is
// compared through t-scores: how many standard deviations a result sits
// from that day's mean for that game, signed by the game's score method
// so that "better" is always positive.

const (
	CategoryParticipation = "Participation"
	CategoryIndividual    = "Individual"
	CategoryCombined      = "Combined"
	CategoryTotal         = "Total"
)

// MetaCategories is the fixed category list of the monthly scoreboard,
// in display order. Per-game categories follow it.
var MetaCategories = []string{CategoryParticipation, CategoryIndividual, CategoryCombined, CategoryTotal}

// CombinedGameName labels the synthetic daily game holding summed
// t-scores for players who played everything.
const CombinedGameName = "Combined"

type gameDayKey struct {
	date string
	game string
}

type scoredEntry struct {
	date   string
	player string
	game   string
	tScore float64
}

// computeTScores converts raw score entries into t-scores, grouping by
// (date, game). Groups with fewer than two entries or zero variance get
// a t-score of 0, which also avoids dividing by zero when only one
// player has played.
func computeTScores(methods map[string]models.ScoreMethod, entries []models.Score) []scoredEntry {
	groups := make(map[gameDayKey][]float64)
	for _, e := range entries {
		key := gameDayKey{date: e.Date, game: e.GameName}
		groups[key] = append(groups[key], float64(e.Score))
	}

	type stats struct{ mean, std float64 }
	groupStats := make(map[gameDayKey]stats, len(groups))
	for key, values := range groups {
		groupStats[key] = stats{mean: mean(values), std: sampleStd(values)}
	}

	scored := make([]scoredEntry, 0, len(entries))
	for _, e := range entries {
		key := gameDayKey{date: e.Date, game: e.GameName}
		st := groupStats[key]
		var t float64
		if st.std != 0 {
			t = (float64(e.Score) - st.mean) / st.std * float64(methods[e.GameName])
		}
		scored = append(scored, scoredEntry{
			date:   e.Date,
			player: e.PlayerName,
			game:   e.GameName,
			tScore: t,
		})
	}
	return scored
}

// calculateDailyCombined produces the synthetic "Combined" scores for one
// day: the rounded sum of t-scores, for players who played every game.
func calculateDailyCombined(methods map[string]models.ScoreMethod, entries []models.Score, date string) []models.Score {
	if len(entries) == 0 {
		return []models.Score{}
	}
	scored := computeTScores(methods, entries)

	gamesPlayed := make(map[string]map[string]bool)
	totals := make(map[string]float64)
	for _, e := range scored {
		if gamesPlayed[e.player] == nil {
			gamesPlayed[e.player] = make(map[string]bool)
		}
		gamesPlayed[e.player][e.game] = true
		totals[e.player] += e.tScore
	}

	combined := make([]models.Score, 0)
	for _, player := range sortedKeys(totals) {
		if len(gamesPlayed[player]) != len(methods) {
			continue
		}
		combined = append(combined, models.Score{
			Date:       date,
			PlayerName: player,
			GameName:   CombinedGameName,
			Score:      int(math.Round(totals[player])),
		})
	}
	return combined
}

// calculateMonthlyPoints turns a month of score entries into flat point
// records. Per (date, game) the unique t-score winner earns a game point;
// players who played every game on a date earn a participation point and
// compete for that date's combined point (unique highest t-score sum).
// Total is the sum of participation, individual, and combined points.
func calculateMonthlyPoints(methods map[string]models.ScoreMethod, gameNames []string, entries []models.Score) []models.Point {
	scored := computeTScores(methods, entries)

	// Individual game wins.
	type playerGame struct{ player, game string }
	gamePoints := make(map[playerGame]int)
	byDateGame := make(map[gameDayKey][]scoredEntry)
	for _, e := range scored {
		key := gameDayKey{date: e.date, game: e.game}
		byDateGame[key] = append(byDateGame[key], e)
	}
	for key, group := range byDateGame {
		winner, unique := uniqueMax(group)
		if unique {
			gamePoints[playerGame{player: winner, game: key.game}]++
		}
	}

	// Participation and combined points: only dates where the player
	// played every game count.
	gamesPlayed := make(map[string]map[string]bool) // date|player -> games
	dayTotals := make(map[string]map[string]float64)
	playerSet := make(map[string]bool)
	for _, e := range scored {
		playerSet[e.player] = true
		dk := e.date + "|" + e.player
		if gamesPlayed[dk] == nil {
			gamesPlayed[dk] = make(map[string]bool)
		}
		gamesPlayed[dk][e.game] = true
		if dayTotals[e.date] == nil {
			dayTotals[e.date] = make(map[string]float64)
		}
		dayTotals[e.date][e.player] += e.tScore
	}

	participation := make(map[string]int)
	combined := make(map[string]int)
	for date, totals := range dayTotals {
		eligible := make([]scoredEntry, 0, len(totals))
		for player, total := range totals {
			if len(gamesPlayed[date+"|"+player]) != len(methods) {
				continue
			}
			participation[player]++
			eligible = append(eligible, scoredEntry{player: player, tScore: total})
		}
		if winner, unique := uniqueMax(eligible); unique {
			combined[winner]++
		}
	}

	// Assemble the flat records, category-major, players alphabetical.
	// Players with no scores this month get no records at all.
	players := make([]string, 0, len(playerSet))
	for player := range playerSet {
		players = append(players, player)
	}
	sort.Strings(players)

	individual := make(map[string]int)
	for _, player := range players {
		for _, game := range gameNames {
			individual[player] += gamePoints[playerGame{player: player, game: game}]
		}
	}

	points := make([]models.Point, 0, len(players)*(len(MetaCategories)+len(gameNames)))
	appendCategory := func(category string, value func(player string) int) {
		for _, player := range players {
			points = append(points, models.Point{
				PlayerName: player,
				Category:   category,
				Points:     value(player),
			})
		}
	}
	appendCategory(CategoryParticipation, func(p string) int { return participation[p] })
	appendCategory(CategoryIndividual, func(p string) int { return individual[p] })
	appendCategory(CategoryCombined, func(p string) int { return combined[p] })
	appendCategory(CategoryTotal, func(p string) int { return participation[p] + individual[p] + combined[p] })
	for _, game := range gameNames {
		game := game
		appendCategory(game, func(p string) int { return gamePoints[playerGame{player: p, game: game}] })
	}
	return points
}

// uniqueMax returns the player holding the strictly highest t-score in
// the group. Ties produce no winner.
func uniqueMax(group []scoredEntry) (string, bool) {
	if len(group) == 0 {
		return "", false
	}
	best := group[0]
	count := 1
	for _, e := range group[1:] {
		switch {
		case e.tScore > best.tScore:
			best = e
			count = 1
		case e.tScore == best.tScore:
			count++
		}
	}
	return best.player, count == 1
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd is the n-1 denominator standard deviation; 0 for groups of
// fewer than two values.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
