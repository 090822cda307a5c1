package stats

import (
	"sort"

	"lolscope/pkg/models"
)

// ChampionStats accumulates the games of a player on a single champion.
type ChampionStats struct {
	ChampionName string `json:"championName"`
	ChampionId   int    `json:"championId"`
	Games        int    `json:"games"`
	Wins         int    `json:"wins"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	TotalDamage  int    `json:"totalDamage"`
	GoldEarned   int    `json:"goldEarned"`
	CreepScore   int    `json:"cs"`
	VisionScore  int    `json:"visionScore"`
}

// WinRate returns the percentage of won games.
func (c *ChampionStats) WinRate() float64 {
	return percentage(c.Wins, c.Games)
}

// KDA returns the KDA over every game.
func (c *ChampionStats) KDA() float64 {
	return KDA(c.Kills, c.Deaths, c.Assists)
}

// Average returns a total divided by the games, with one decimal.
func (c *ChampionStats) Average(total int) float64 {
	if c.Games == 0 {
		return 0
	}
	return Round(float64(total)/float64(c.Games), 1)
}

// ChampionRollup credits the player stats of every match to the champion played.
func ChampionRollup(matches []models.Match, puuid string) map[string]*ChampionStats {
	rollup := make(map[string]*ChampionStats)

	for _, match := range matches {
		self, ok := SelfParticipant(match, puuid)
		if !ok {
			continue
		}

		entry, exists := rollup[self.ChampionName]
		if !exists {
			entry = &ChampionStats{ChampionName: self.ChampionName, ChampionId: self.ChampionId}
			rollup[self.ChampionName] = entry
		}

		entry.Games++
		if self.Win {
			entry.Wins++
		}
		entry.Kills += self.Kills
		entry.Deaths += self.Deaths
		entry.Assists += self.Assists
		entry.TotalDamage += self.TotalDamageDealtToChampions
		entry.GoldEarned += self.GoldEarned
		entry.CreepScore += self.CreepScore()
		entry.VisionScore += self.VisionScore
	}

	return rollup
}

// MostPlayed sorts the rollup by games, then wins, then name.
// A limit of zero or less returns every champion.
func MostPlayed(rollup map[string]*ChampionStats, limit int) []*ChampionStats {
	result := make([]*ChampionStats, 0, len(rollup))
	for _, entry := range rollup {
		result = append(result, entry)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Games != result[j].Games {
			return result[i].Games > result[j].Games
		}
		if result[i].Wins != result[j].Wins {
			return result[i].Wins > result[j].Wins
		}
		return result[i].ChampionName < result[j].ChampionName
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
