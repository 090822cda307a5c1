// Package stats computes the derived statistics of a player over a list of matches.
// Every function is pure and ignores matches where the player is absent.
package stats

import (
	"math"

	"lolscope/pkg/models"
)

// Round rounds half away from zero to the given decimals.
func Round(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

// KDA returns (kills + assists) / deaths, with deaths floored at one.
func KDA(kills, deaths, assists int) float64 {
	return Round(float64(kills+assists)/float64(max(deaths, 1)), 2)
}

// CSPerMinute returns the creep score per minute, zero for a empty duration.
func CSPerMinute(totalCs int, durationSeconds int) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return Round(float64(totalCs)/(float64(durationSeconds)/60), 1)
}

// SelfParticipant returns the participant row of the player.
func SelfParticipant(match models.Match, puuid string) (models.Participant, bool) {
	for _, p := range match.Participants {
		if p.Puuid == puuid {
			return p, true
		}
	}
	return models.Participant{}, false
}

// DamageShare returns the percentage of the team damage to champions dealt by the participant.
func DamageShare(participant models.Participant, match models.Match) float64 {
	teamDamage := 0
	for _, p := range match.Participants {
		if p.TeamId == participant.TeamId {
			teamDamage += p.TotalDamageDealtToChampions
		}
	}

	if teamDamage == 0 {
		return 0
	}
	return Round(float64(participant.TotalDamageDealtToChampions)/float64(teamDamage)*100, 1)
}

// WinRate returns the percentage of won matches.
func WinRate(matches []models.Match, puuid string) float64 {
	games, wins := 0, 0
	for _, match := range matches {
		self, ok := SelfParticipant(match, puuid)
		if !ok {
			continue
		}

		games++
		if self.Win {
			wins++
		}
	}

	return percentage(wins, games)
}

// percentage returns part/total as a percentage with one decimal.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round(float64(part)/float64(total)*100, 1)
}
