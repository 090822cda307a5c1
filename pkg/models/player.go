package models

import "time"

// Summoner is the player view model built by a lookup.
// Matches keep the provider order, most recent first.
type Summoner struct {
	Puuid         string    `json:"puuid"`
	Name          string    `json:"name"`
	Tag           string    `json:"tag"`
	ProfileIconId int       `json:"profileIconId"`
	SummonerLevel int       `json:"summonerLevel"`
	Rank          *RankInfo `json:"rank"`
	Matches       []Match   `json:"matches"`
}

// RankInfo is the ranked standing on a single queue.
type RankInfo struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Division     string `json:"division"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// FavoritePlayer is a entry of the favorites registry.
type FavoritePlayer struct {
	Id             string    `json:"id"`
	GameName       string    `json:"gameName"`
	TagLine        string    `json:"tagLine"`
	ProfileIconId  *int      `json:"profileIconId,omitempty"`
	LastSearchedAt time.Time `json:"lastSearchedAt"`
}
