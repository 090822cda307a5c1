package stats

import (
	"testing"
	"time"

	"lolscope/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestFilterMatches(t *testing.T) {
	jungle := func(m *models.Match) { m.Participants[0].TeamPosition = "JUNGLE" }

	matches := []models.Match{
		newTestMatch("solo-win", withCreation(1000)),
		newTestMatch("flex-loss", withQueue(440), withCreation(2000), withSelf("Lux", 1, 5, 2, false)),
		newTestMatch("aram-win", withQueue(450), withCreation(3000)),
		newTestMatch("normal-jungle", withQueue(400), withCreation(4000), jungle),
		newForeignMatch("foreign"),
	}

	tests := []struct {
		name     string
		filter   MatchFilter
		expected []string
	}{
		{name: "no filter", filter: MatchFilter{}, expected: []string{"solo-win", "flex-loss", "aram-win", "normal-jungle"}},
		{name: "queue ids", filter: MatchFilter{QueueIds: []int{440, 450}}, expected: []string{"flex-loss", "aram-win"}},
		{name: "ranked", filter: MatchFilter{GameType: "ranked"}, expected: []string{"solo-win", "flex-loss"}},
		{name: "normal", filter: MatchFilter{GameType: "NORMAL"}, expected: []string{"normal-jungle"}},
		{name: "aram", filter: MatchFilter{GameType: "ARAM"}, expected: []string{"aram-win"}},
		{name: "champion", filter: MatchFilter{Champions: []string{"lux"}}, expected: []string{"flex-loss"}},
		{name: "wins", filter: MatchFilter{Result: "win"}, expected: []string{"solo-win", "aram-win", "normal-jungle"}},
		{name: "losses", filter: MatchFilter{Result: "LOSS"}, expected: []string{"flex-loss"}},
		{name: "role", filter: MatchFilter{Role: "jungle"}, expected: []string{"normal-jungle"}},
		{
			name:     "time range",
			filter:   MatchFilter{Since: time.UnixMilli(2000), Until: time.UnixMilli(3000)},
			expected: []string{"flex-loss", "aram-win"},
		},
		{name: "combined", filter: MatchFilter{GameType: "ranked", Result: "win"}, expected: []string{"solo-win"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterMatches(matches, selfPuuid, tt.filter)

			ids := make([]string, len(result))
			for i, match := range result {
				ids[i] = match.MatchId
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestMatchFilterValidate(t *testing.T) {
	tests := []struct {
		name          string
		filter        MatchFilter
		expectedError bool
	}{
		{name: "empty", filter: MatchFilter{}},
		{name: "valid", filter: MatchFilter{Result: "Win", GameType: "aram", Since: time.UnixMilli(1), Until: time.UnixMilli(2)}},
		{name: "unknown result", filter: MatchFilter{Result: "draw"}, expectedError: true},
		{name: "unknown game type", filter: MatchFilter{GameType: "arena"}, expectedError: true},
		{name: "reversed range", filter: MatchFilter{Since: time.UnixMilli(2), Until: time.UnixMilli(1)}, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidFilter)
				return
			}
			assert.NoError(t, err)
		})
	}
}
