package stats

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"lolscope/pkg/models"
	queuevalues "lolscope/pkg/riotvalues/queue"
)

// Accepted values of the result filter.
const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

var ErrInvalidFilter = errors.New("invalid match filter")

// MatchFilter narrows the matches of a player. Zero values match everything.
type MatchFilter struct {
	QueueIds  []int
	Champions []string
	Result    string
	Role      string
	GameType  string
	Since     time.Time
	Until     time.Time
}

// Validate checks the enumerated fields and the time range.
func (f MatchFilter) Validate() error {
	if f.Result != "" && !strings.EqualFold(f.Result, ResultWin) && !strings.EqualFold(f.Result, ResultLoss) {
		return fmt.Errorf("%w: unknown result %q", ErrInvalidFilter, f.Result)
	}
	if _, ok := queuevalues.GameTypeQueues(f.GameType); !ok {
		return fmt.Errorf("%w: unknown game type %q", ErrInvalidFilter, f.GameType)
	}
	if !f.Since.IsZero() && !f.Until.IsZero() && f.Until.Before(f.Since) {
		return fmt.Errorf("%w: until is before since", ErrInvalidFilter)
	}
	return nil
}

// FilterMatches keeps the matches where the player is present and every filter holds.
// The order of the input is preserved.
func FilterMatches(matches []models.Match, puuid string, filter MatchFilter) []models.Match {
	gameTypeQueues, _ := queuevalues.GameTypeQueues(filter.GameType)

	result := make([]models.Match, 0, len(matches))
	for _, match := range matches {
		self, ok := SelfParticipant(match, puuid)
		if !ok {
			continue
		}

		if len(filter.QueueIds) > 0 && !slices.Contains(filter.QueueIds, match.QueueId) {
			continue
		}
		if gameTypeQueues != nil && !slices.Contains(gameTypeQueues, match.QueueId) {
			continue
		}
		if len(filter.Champions) > 0 && !slices.ContainsFunc(filter.Champions, func(name string) bool {
			return strings.EqualFold(name, self.ChampionName)
		}) {
			continue
		}
		if filter.Role != "" && !strings.EqualFold(filter.Role, self.TeamPosition) {
			continue
		}
		if filter.Result != "" && strings.EqualFold(filter.Result, ResultWin) != self.Win {
			continue
		}

		created := time.UnixMilli(match.GameCreation)
		if !filter.Since.IsZero() && created.Before(filter.Since) {
			continue
		}
		if !filter.Until.IsZero() && created.After(filter.Until) {
			continue
		}

		result = append(result, match)
	}

	return result
}
