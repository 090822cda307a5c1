package regions

import (
	"fmt"
	"strings"

	"lolscope/pkg/messages"
)

// Simple package containing the region list.
// Create the types for clarity.
type (
	MainRegion string
	SubRegion  string
)

// List of regions.
var RegionList = map[MainRegion][]SubRegion{
	"AMERICAS": {"BR1", "LA1", "LA2", "NA1"},
	"EUROPE":   {"EUN1", "EUW1", "TR1", "ME1", "RU"},
	"ASIA":     {"KR", "JP1"},
	"SEA":      {"OC1", "SG2", "TW2", "VN2"},
}

// GetMainRegion returns the regional routing value of a platform.
func GetMainRegion(platform string) (MainRegion, error) {
	platform = strings.ToUpper(strings.TrimSpace(platform))
	for main, subRegions := range RegionList {
		for _, sub := range subRegions {
			if string(sub) == platform {
				return main, nil
			}
		}
	}
	return "", fmt.Errorf(messages.UnknownPlatformMsg, platform)
}

// PlatformHost returns the base URL of a platform routed endpoint.
func PlatformHost(platform SubRegion) string {
	return fmt.Sprintf("https://%s.api.riotgames.com", strings.ToLower(string(platform)))
}

// RegionalHost returns the base URL of a regional routed endpoint.
func RegionalHost(region MainRegion) string {
	return fmt.Sprintf("https://%s.api.riotgames.com", strings.ToLower(string(region)))
}
