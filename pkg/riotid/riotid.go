// Package riotid normalizes the gameName#tagLine pair players are searched by.
package riotid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRiotId is returned for a pair that can't identify a player.
var ErrInvalidRiotId = errors.New("game name and tag line are required")

// ErrInvalidTagLine rejects tags with the key separator, riot tags are alphanumeric.
var ErrInvalidTagLine = fmt.Errorf("%w: tag line can't contain '-'", ErrInvalidRiotId)

// Normalize trims both parts and strips a leading # from the tag.
func Normalize(gameName, tagLine string) (string, string) {
	gameName = strings.TrimSpace(gameName)
	tagLine = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tagLine), "#"))
	return gameName, tagLine
}

// Validate normalizes the pair and fails when a part is empty or the tag has a dash.
func Validate(gameName, tagLine string) (string, string, error) {
	gameName, tagLine = Normalize(gameName, tagLine)
	if gameName == "" || tagLine == "" {
		return "", "", ErrInvalidRiotId
	}
	if strings.Contains(tagLine, "-") {
		return "", "", ErrInvalidTagLine
	}
	return gameName, tagLine, nil
}

// Key returns the case insensitive identity of the pair.
// It is unique for pairs accepted by Validate.
func Key(gameName, tagLine string) string {
	gameName, tagLine = Normalize(gameName, tagLine)
	return strings.ToLower(gameName) + "-" + strings.ToLower(tagLine)
}

// Equal compares both parts of two pairs ignoring case.
func Equal(gameName, tagLine, otherName, otherTag string) bool {
	gameName, tagLine = Normalize(gameName, tagLine)
	otherName, otherTag = Normalize(otherName, otherTag)
	return strings.EqualFold(gameName, otherName) && strings.EqualFold(tagLine, otherTag)
}
