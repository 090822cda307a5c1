package stats

import (
	"slices"
	"sort"

	"lolscope/pkg/models"
	queuevalues "lolscope/pkg/riotvalues/queue"
)

// Level labels a statistic against its thresholds.
type Level string

const (
	LevelPoor      Level = "poor"
	LevelAverage   Level = "average"
	LevelGood      Level = "good"
	LevelExcellent Level = "excellent"
)

// Thresholds of each statistic, ascending.
var (
	KDAThresholds         = []float64{1.5, 2.5, 3.5, 5, 10}
	CSPerMinuteThresholds = []float64{5, 7, 8.5, 10}
	VisionThresholds      = []float64{15, 25, 35, 50}
)

// PerformancePoint is the performance of the player in a single game.
type PerformancePoint struct {
	MatchId      string  `json:"matchId"`
	GameCreation int64   `json:"gameCreation"`
	ChampionName string  `json:"championName"`
	KDA          float64 `json:"kda"`
	CSPerMinute  float64 `json:"csPerMinute"`
	VisionScore  int     `json:"visionScore"`
	DamageShare  float64 `json:"damageShare"`
	Win          bool    `json:"win"`
}

// PerformanceAverages summarizes a performance series.
type PerformanceAverages struct {
	Games       int     `json:"games"`
	KDA         float64 `json:"kda"`
	CSPerMinute float64 `json:"csPerMinute"`
	VisionScore float64 `json:"visionScore"`
	DamageShare float64 `json:"damageShare"`
	WinRate     float64 `json:"winRate"`
}

// PerformanceSeries builds the ranked games of the player, oldest first.
func PerformanceSeries(matches []models.Match, puuid string) []PerformancePoint {
	return buildPoints(matches, puuid, queuevalues.RankedQueues)
}

// GamePoints builds every game of the player, oldest first.
func GamePoints(matches []models.Match, puuid string) []PerformancePoint {
	return buildPoints(matches, puuid, nil)
}

// buildPoints keeps the matches of the given queues, nil meaning all of them.
func buildPoints(matches []models.Match, puuid string, queues []int) []PerformancePoint {
	series := make([]PerformancePoint, 0, len(matches))

	for _, match := range matches {
		if queues != nil && !slices.Contains(queues, match.QueueId) {
			continue
		}

		self, ok := SelfParticipant(match, puuid)
		if !ok {
			continue
		}

		series = append(series, PerformancePoint{
			MatchId:      match.MatchId,
			GameCreation: match.GameCreation,
			ChampionName: self.ChampionName,
			KDA:          KDA(self.Kills, self.Deaths, self.Assists),
			CSPerMinute:  CSPerMinute(self.CreepScore(), match.GameDuration),
			VisionScore:  self.VisionScore,
			DamageShare:  DamageShare(self, match),
			Win:          self.Win,
		})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].GameCreation < series[j].GameCreation
	})

	return series
}

// Values extracts a single statistic of every point.
func Values(series []PerformancePoint, selector func(PerformancePoint) float64) []float64 {
	values := make([]float64, len(series))
	for i, point := range series {
		values[i] = selector(point)
	}
	return values
}

// Averages returns the mean of every statistic of the series.
func Averages(series []PerformancePoint) PerformanceAverages {
	if len(series) == 0 {
		return PerformanceAverages{}
	}

	var kda, cs, vision, damage float64
	wins := 0
	for _, point := range series {
		kda += point.KDA
		cs += point.CSPerMinute
		vision += float64(point.VisionScore)
		damage += point.DamageShare
		if point.Win {
			wins++
		}
	}

	games := float64(len(series))
	return PerformanceAverages{
		Games:       len(series),
		KDA:         Round(kda/games, 2),
		CSPerMinute: Round(cs/games, 1),
		VisionScore: Round(vision/games, 0),
		DamageShare: Round(damage/games, 1),
		WinRate:     percentage(wins, len(series)),
	}
}

// StatLevel labels a value with the first three thresholds.
// Values under the first one are poor, values from the third one are excellent.
func StatLevel(value float64, thresholds []float64) Level {
	sorted := slices.Clone(thresholds)
	slices.Sort(sorted)

	levels := []Level{LevelPoor, LevelAverage, LevelGood}
	for i, level := range levels {
		if i < len(sorted) && value < sorted[i] {
			return level
		}
	}
	return LevelExcellent
}
