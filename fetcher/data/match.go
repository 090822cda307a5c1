package data

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"lolscope/pkg/models"
)

// GetMatchIds returns the most recent match ids of a player, newest first.
func (f *MainFetcher) GetMatchIds(ctx context.Context, puuid string, start int, count int) ([]string, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids", f.regionalURL, url.PathEscape(puuid))
	params := map[string]string{
		"start": strconv.Itoa(start),
		"count": strconv.Itoa(count),
	}

	var matchIds []string
	if err := f.requests.Get(ctx, endpointMatchIds, endpoint, params, &matchIds); err != nil {
		return nil, err
	}

	return matchIds, nil
}

// GetMatch returns the details of a given match.
func (f *MainFetcher) GetMatch(ctx context.Context, matchId string) (*models.Match, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/%s", f.regionalURL, url.PathEscape(matchId))

	var matchData MatchData
	if err := f.requests.Get(ctx, endpointMatch, endpoint, nil, &matchData); err != nil {
		return nil, err
	}

	match := matchData.ToMatch()
	if match.MatchId == "" {
		match.MatchId = matchId
	}
	return match, nil
}

// ToMatch converts the provider payload to the domain match.
func (m *MatchData) ToMatch() *models.Match {
	info := m.Info

	// Before patch 11.20 the duration came in milliseconds, without the end timestamp.
	duration := info.GameDuration
	if info.GameEndTimestamp == 0 {
		duration /= 1000
	}

	match := &models.Match{
		MatchId:      m.Metadata.MatchId,
		QueueId:      info.QueueId,
		GameDuration: duration,
		GameCreation: info.GameCreation,
		GameVersion:  info.GameVersion,
		Participants: make([]models.Participant, 0, len(info.Participants)),
		Teams:        make([]models.Team, 0, len(info.Teams)),
	}

	for _, p := range info.Participants {
		match.Participants = append(match.Participants, models.Participant{
			Puuid:                       p.Puuid,
			RiotIdGameName:              p.RiotIdGameName,
			RiotIdTagline:               p.RiotIdTagline,
			ChampionId:                  p.ChampionId,
			ChampionName:                p.ChampionName,
			ChampionLevel:               p.ChampionLevel,
			TeamId:                      p.TeamId,
			TeamPosition:                p.TeamPosition,
			Kills:                       p.Kills,
			Deaths:                      p.Deaths,
			Assists:                     p.Assists,
			TotalDamageDealtToChampions: p.TotalDamageDealtToChampions,
			TotalMinionsKilled:          p.TotalMinionsKilled,
			NeutralMinionsKilled:        p.NeutralMinionsKilled,
			VisionScore:                 p.VisionScore,
			GoldEarned:                  p.GoldEarned,
			Items:                       []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6},
			Win:                         p.Win,
		})
	}

	for _, t := range info.Teams {
		team := models.Team{
			TeamId: t.TeamId,
			Win:    t.Win,
			Bans:   make([]models.Ban, 0, len(t.Bans)),
			Objectives: models.Objectives{
				Baron:      objective(t.Objectives["baron"]),
				Dragon:     objective(t.Objectives["dragon"]),
				Tower:      objective(t.Objectives["tower"]),
				Inhibitor:  objective(t.Objectives["inhibitor"]),
				RiftHerald: objective(t.Objectives["riftHerald"]),
				Champion:   objective(t.Objectives["champion"]),
			},
		}
		for _, b := range t.Bans {
			team.Bans = append(team.Bans, models.Ban{ChampionId: b.ChampionId, PickTurn: b.PickTurn})
		}
		match.Teams = append(match.Teams, team)
	}

	return match
}

func objective(o TeamObj) models.Objective {
	return models.Objective{First: o.First, Kills: o.Kills}
}
