package dto

import (
	"lolscope/api/stats"
	"lolscope/pkg/models"
)

// PlayerView is the player view model returned by a lookup.
type PlayerView struct {
	*models.Summoner
	IsFavorite bool `json:"isFavorite"`
}

// PlayerSummary is the derived statistics of a player over the filtered matches.
type PlayerSummary struct {
	Puuid        string                    `json:"puuid"`
	Name         string                    `json:"name"`
	Tag          string                    `json:"tag"`
	Rank         *models.RankInfo          `json:"rank"`
	Games        int                       `json:"games"`
	Wins         int                       `json:"wins"`
	Losses       int                       `json:"losses"`
	WinRate      float64                   `json:"winRate"`
	Averages     stats.PerformanceAverages `json:"averages"`
	Levels       StatLevels                `json:"levels"`
	Trends       StatTrends                `json:"trends"`
	TopChampions []ChampionSummary         `json:"topChampions"`
	Series       []SeriesPoint             `json:"series"`
}

// StatLevels labels the averages.
type StatLevels struct {
	KDA         stats.Level `json:"kda"`
	CSPerMinute stats.Level `json:"csPerMinute"`
	VisionScore stats.Level `json:"visionScore"`
}

// StatTrends is the direction of each statistic over the last games.
type StatTrends struct {
	KDA         stats.Direction `json:"kda"`
	CSPerMinute stats.Direction `json:"csPerMinute"`
	VisionScore stats.Direction `json:"visionScore"`
}

// ChampionSummary is a row of the most played champions.
type ChampionSummary struct {
	ChampionName  string  `json:"championName"`
	ChampionId    int     `json:"championId"`
	Games         int     `json:"games"`
	Wins          int     `json:"wins"`
	WinRate       float64 `json:"winRate"`
	KDA           float64 `json:"kda"`
	AverageDamage float64 `json:"averageDamage"`
	AverageGold   float64 `json:"averageGold"`
	AverageCs     float64 `json:"averageCs"`
	AverageVision float64 `json:"averageVision"`
}

// SeriesPoint is a ranked game with the moving averages up to it.
type SeriesPoint struct {
	stats.PerformancePoint
	KDAAverage         float64 `json:"kdaAverage"`
	CSPerMinuteAverage float64 `json:"csPerMinuteAverage"`
	VisionAverage      float64 `json:"visionAverage"`
}
