package data

import (
	"context"
	"fmt"
	"net/url"
)

// GetLeagueEntriesBySummonerId returns the ranked entries of a summoner for each queue.
func (f *MainFetcher) GetLeagueEntriesBySummonerId(ctx context.Context, summonerId string) ([]LeagueEntry, error) {
	endpoint := fmt.Sprintf("%s/lol/league/v4/entries/by-summoner/%s", f.platformURL, url.PathEscape(summonerId))
	return f.getLeagueEntries(ctx, endpoint)
}

// GetLeagueEntriesByPuuid returns the ranked entries of a player for each queue.
func (f *MainFetcher) GetLeagueEntriesByPuuid(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	endpoint := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", f.platformURL, url.PathEscape(puuid))
	return f.getLeagueEntries(ctx, endpoint)
}

func (f *MainFetcher) getLeagueEntries(ctx context.Context, endpoint string) ([]LeagueEntry, error) {
	var entries []LeagueEntry
	if err := f.requests.Get(ctx, endpointLeague, endpoint, nil, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
