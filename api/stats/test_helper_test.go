package stats

import "lolscope/pkg/models"

const selfPuuid = "self"

type matchOption func(*models.Match)

func withSelf(champion string, kills, deaths, assists int, win bool) matchOption {
	return func(m *models.Match) {
		m.Participants[0].ChampionName = champion
		m.Participants[0].Kills = kills
		m.Participants[0].Deaths = deaths
		m.Participants[0].Assists = assists
		m.Participants[0].Win = win
	}
}

func withQueue(queueId int) matchOption {
	return func(m *models.Match) {
		m.QueueId = queueId
	}
}

func withCreation(ms int64) matchOption {
	return func(m *models.Match) {
		m.GameCreation = ms
	}
}

// Helper building a 1v1 ranked match of 30 minutes.
func newTestMatch(id string, opts ...matchOption) models.Match {
	match := models.Match{
		MatchId:      id,
		QueueId:      420,
		GameDuration: 1800,
		GameCreation: 1700000000000,
		Participants: []models.Participant{
			{
				Puuid:                       selfPuuid,
				ChampionName:                "Ahri",
				TeamId:                      100,
				TeamPosition:                "MIDDLE",
				Kills:                       5,
				Deaths:                      2,
				Assists:                     5,
				TotalDamageDealtToChampions: 20000,
				TotalMinionsKilled:          200,
				NeutralMinionsKilled:        10,
				VisionScore:                 20,
				GoldEarned:                  12000,
				Win:                         true,
			},
			{
				Puuid:                       "ally",
				TeamId:                      100,
				TotalDamageDealtToChampions: 30000,
			},
			{
				Puuid:  "enemy",
				TeamId: 200,
			},
		},
	}
	for _, opt := range opts {
		opt(&match)
	}
	return match
}

// Helper building a match without the player.
func newForeignMatch(id string) models.Match {
	return models.Match{
		MatchId:      id,
		QueueId:      420,
		GameDuration: 1800,
		Participants: []models.Participant{{Puuid: "someone", Win: true}},
	}
}
