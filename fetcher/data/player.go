package data

import (
	"context"
	"fmt"
	"net/url"
)

// GetAccountByRiotId resolves a Riot ID to its account.
func (f *MainFetcher) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*Account, error) {
	// Format the URL.
	endpoint := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		f.regionalURL, url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := f.requests.Get(ctx, endpointAccount, endpoint, nil, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// GetSummonerByPuuid returns the summoner data of a player.
func (f *MainFetcher) GetSummonerByPuuid(ctx context.Context, puuid string) (*SummonerByPuuid, error) {
	endpoint := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", f.platformURL, url.PathEscape(puuid))

	var summoner SummonerByPuuid
	if err := f.requests.Get(ctx, endpointSummoner, endpoint, nil, &summoner); err != nil {
		return nil, err
	}

	return &summoner, nil
}
