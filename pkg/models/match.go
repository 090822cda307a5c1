package models

// Match is a finished game, immutable once fetched.
// GameDuration is in seconds and GameCreation in unix milliseconds.
type Match struct {
	MatchId      string        `json:"matchId"`
	QueueId      int           `json:"queueId"`
	GameDuration int           `json:"gameDuration"`
	GameCreation int64         `json:"gameCreation"`
	GameVersion  string        `json:"gameVersion"`
	Participants []Participant `json:"participants"`
	Teams        []Team        `json:"teams"`
}

// Participant contains the stats of a given player in a Match.
type Participant struct {
	Puuid                       string `json:"puuid"`
	RiotIdGameName              string `json:"riotIdGameName"`
	RiotIdTagline               string `json:"riotIdTagline"`
	ChampionId                  int    `json:"championId"`
	ChampionName                string `json:"championName"`
	ChampionLevel               int    `json:"champLevel"`
	TeamId                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	VisionScore                 int    `json:"visionScore"`
	GoldEarned                  int    `json:"goldEarned"`
	Items                       []int  `json:"items"`
	Win                         bool   `json:"win"`
}

// CreepScore returns the minions and monsters killed.
func (p Participant) CreepScore() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

// Team contains the bans, objectives and result of a side.
type Team struct {
	TeamId     int        `json:"teamId"`
	Win        bool       `json:"win"`
	Bans       []Ban      `json:"bans"`
	Objectives Objectives `json:"objectives"`
}

// Ban information.
type Ban struct {
	ChampionId int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

// Objectives taken by a team.
type Objectives struct {
	Baron      Objective `json:"baron"`
	Dragon     Objective `json:"dragon"`
	Tower      Objective `json:"tower"`
	Inhibitor  Objective `json:"inhibitor"`
	RiftHerald Objective `json:"riftHerald"`
	Champion   Objective `json:"champion"`
}

// Objective tells if the team took it first and how many times.
type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}
