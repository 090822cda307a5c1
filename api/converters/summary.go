package converters

import (
	"lolscope/api/dto"
	"lolscope/api/stats"
	"lolscope/pkg/models"
)

// Default amount of champions on the summary.
const DefaultTopChampions = 5

// ConvertPlayerSummary computes the derived statistics of the player over the filtered matches.
func ConvertPlayerSummary(summoner *models.Summoner, filter stats.MatchFilter, topChampions int) *dto.PlayerSummary {
	if topChampions <= 0 {
		topChampions = DefaultTopChampions
	}

	matches := stats.FilterMatches(summoner.Matches, summoner.Puuid, filter)
	points := stats.GamePoints(matches, summoner.Puuid)
	averages := stats.Averages(points)

	wins := 0
	for _, point := range points {
		if point.Win {
			wins++
		}
	}

	return &dto.PlayerSummary{
		Puuid:    summoner.Puuid,
		Name:     summoner.Name,
		Tag:      summoner.Tag,
		Rank:     summoner.Rank,
		Games:    len(points),
		Wins:     wins,
		Losses:   len(points) - wins,
		WinRate:  stats.WinRate(matches, summoner.Puuid),
		Averages: averages,
		Levels: dto.StatLevels{
			KDA:         stats.StatLevel(averages.KDA, stats.KDAThresholds),
			CSPerMinute: stats.StatLevel(averages.CSPerMinute, stats.CSPerMinuteThresholds),
			VisionScore: stats.StatLevel(averages.VisionScore, stats.VisionThresholds),
		},
		Trends: dto.StatTrends{
			KDA:         stats.Trend(stats.Values(points, kdaOf), stats.DefaultTrendWindow),
			CSPerMinute: stats.Trend(stats.Values(points, csOf), stats.DefaultTrendWindow),
			VisionScore: stats.Trend(stats.Values(points, visionOf), stats.DefaultTrendWindow),
		},
		TopChampions: convertChampions(stats.MostPlayed(stats.ChampionRollup(matches, summoner.Puuid), topChampions)),
		Series:       convertSeries(stats.PerformanceSeries(matches, summoner.Puuid)),
	}
}

func kdaOf(point stats.PerformancePoint) float64 { return point.KDA }
func csOf(point stats.PerformancePoint) float64 { return point.CSPerMinute }
func visionOf(point stats.PerformancePoint) float64 { return float64(point.VisionScore) }

func convertChampions(champions []*stats.ChampionStats) []dto.ChampionSummary {
	result := make([]dto.ChampionSummary, 0, len(champions))
	for _, champion := range champions {
		result = append(result, dto.ChampionSummary{
			ChampionName:  champion.ChampionName,
			ChampionId:    champion.ChampionId,
			Games:         champion.Games,
			Wins:          champion.Wins,
			WinRate:       champion.WinRate(),
			KDA:           champion.KDA(),
			AverageDamage: champion.Average(champion.TotalDamage),
			AverageGold:   champion.Average(champion.GoldEarned),
			AverageCs:     champion.Average(champion.CreepScore),
			AverageVision: champion.Average(champion.VisionScore),
		})
	}
	return result
}

// convertSeries attaches the moving averages to every point.
func convertSeries(series []stats.PerformancePoint) []dto.SeriesPoint {
	kda := stats.MovingAverage(stats.Values(series, kdaOf), stats.DefaultTrendWindow)
	cs := stats.MovingAverage(stats.Values(series, csOf), stats.DefaultTrendWindow)
	vision := stats.MovingAverage(stats.Values(series, visionOf), stats.DefaultTrendWindow)

	result := make([]dto.SeriesPoint, len(series))
	for i, point := range series {
		result[i] = dto.SeriesPoint{
			PerformancePoint:   point,
			KDAAverage:         kda[i],
			CSPerMinuteAverage: cs[i],
			VisionAverage:      vision[i],
		}
	}
	return result
}
