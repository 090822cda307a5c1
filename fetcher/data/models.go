package data

// Account is the return of a account search.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// SummonerByPuuid is the return of the summoner endpoint.
// Id is omitted by the provider on newer payloads.
type SummonerByPuuid struct {
	Id            string `json:"id"`
	Puuid         string `json:"puuid"`
	ProfileIconId int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntry defines the type returned by the league entries endpoints.
type LeagueEntry struct {
	SummonerId   string  `json:"summonerId"`
	Puuid        string  `json:"puuid"`
	QueueType    *string `json:"queueType,omitempty"`
	Tier         *string `json:"tier,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	HotStreak    bool    `json:"hotStreak"`
}

// MatchData is the return of the match endpoint.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata identifies the match.
type MatchMetadata struct {
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo contains the basic match metadata.
type MatchInfo struct {
	GameCreation     int64         `json:"gameCreation"`
	GameDuration     int           `json:"gameDuration"`
	GameEndTimestamp int64         `json:"gameEndTimestamp"`
	GameMode         string        `json:"gameMode"`
	GameVersion      string        `json:"gameVersion"`
	Participants     []MatchPlayer `json:"participants"`
	QueueId          int           `json:"queueId"`
	Teams            []TeamInfo    `json:"teams"`
}

// MatchPlayer contains the stats and information about a given player in a Match.
type MatchPlayer struct {
	Assists                     int    `json:"assists"`
	ChampionLevel               int    `json:"champLevel"`
	ChampionId                  int    `json:"championId"`
	ChampionName                string `json:"championName"`
	Deaths                      int    `json:"deaths"`
	GoldEarned                  int    `json:"goldEarned"`
	Item0                       int    `json:"item0"`
	Item1                       int    `json:"item1"`
	Item2                       int    `json:"item2"`
	Item3                       int    `json:"item3"`
	Item4                       int    `json:"item4"`
	Item5                       int    `json:"item5"`
	Item6                       int    `json:"item6"`
	Kills                       int    `json:"kills"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	Puuid                       string `json:"puuid"`
	RiotIdGameName              string `json:"riotIdGameName"`
	RiotIdTagline               string `json:"riotIdTagline"`
	TeamId                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	VisionScore                 int    `json:"visionScore"`
	Win                         bool   `json:"win"`
}

// TeamInfo contains the bans, objectives, id and if the team won.
type TeamInfo struct {
	Bans       []Ban              `json:"bans"`
	Objectives map[string]TeamObj `json:"objectives"`
	TeamId     int                `json:"teamId"`
	Win        bool               `json:"win"`
}

// TeamObj is a single objective entry.
type TeamObj struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// Ban information.
type Ban struct {
	ChampionId int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}
