package filters

import (
	"time"

	"lolscope/api/stats"
)

// URI params identifying a player.
type PlayerURIParams struct {
	GameName string `uri:"gameName" binding:"required"`
	TagLine  string `uri:"tagLine" binding:"required"`
}

// Query params for the player lookup.
type PlayerLookupParams struct {
	Refresh bool `form:"refresh"`
}

// Query params for the player summary. Times are unix milliseconds.
type PlayerSummaryParams struct {
	Queue    []int    `form:"queue"`
	Champion []string `form:"champion"`
	Result   string   `form:"result"`
	Role     string   `form:"role"`
	GameType string   `form:"gameType"`
	Since    int64    `form:"since" binding:"omitempty,min=0"`
	Until    int64    `form:"until" binding:"omitempty,min=0"`
	Limit    int      `form:"limit" binding:"omitempty,min=1,max=50"`
}

// AsMatchFilter converts the query params to the match filter.
func (q *PlayerSummaryParams) AsMatchFilter() stats.MatchFilter {
	filter := stats.MatchFilter{
		QueueIds:  q.Queue,
		Champions: q.Champion,
		Result:    q.Result,
		Role:      q.Role,
		GameType:  q.GameType,
	}

	if q.Since > 0 {
		filter.Since = time.UnixMilli(q.Since)
	}
	if q.Until > 0 {
		filter.Until = time.UnixMilli(q.Until)
	}

	return filter
}
