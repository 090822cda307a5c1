package queuevalues

import "strings"

// Queue type of the solo/duo ladder, preferred when picking the displayed rank.
const SoloQueueType = "RANKED_SOLO_5x5"

// Queues counted as ranked and normal games on the game type filter.
var (
	RankedQueues = []int{420, 440}
	NormalQueues = []int{400, 430, 490}
	AramQueues   = []int{450}
)

// Game type groups accepted by the match filter.
const (
	GameTypeAll    = "ALL"
	GameTypeRanked = "RANKED"
	GameTypeNormal = "NORMAL"
	GameTypeAram   = "ARAM"
)

// Display names of the known queues.
var queueNames = map[int]string{
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	490:  "Quickplay",
	700:  "Clash",
	830:  "Co-op vs AI Intro",
	840:  "Co-op vs AI Beginner",
	850:  "Co-op vs AI Intermediate",
	900:  "URF",
	1010: "URF",
	1020: "One for All",
	1200: "Nexus Blitz",
	1300: "Nexus Blitz",
	1400: "Ultimate Spellbook",
	1700: "Arena",
	1900: "URF",
}

// QueueName returns the display name of a queue.
func QueueName(queueId int) string {
	if name, ok := queueNames[queueId]; ok {
		return name
	}
	return "Custom Game"
}

// GameTypeQueues returns the queues of a game type group, nil meaning every queue.
// The lookup is case insensitive and an empty group is the same as ALL.
func GameTypeQueues(gameType string) ([]int, bool) {
	switch strings.ToUpper(strings.TrimSpace(gameType)) {
	case "", GameTypeAll:
		return nil, true
	case GameTypeRanked:
		return RankedQueues, true
	case GameTypeNormal:
		return NormalQueues, true
	case GameTypeAram:
		return AramQueues, true
	}
	return nil, false
}
