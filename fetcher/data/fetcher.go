package data

import (
	"context"
	"strings"

	"lolscope/fetcher/requests"
	"lolscope/pkg/config"
	"lolscope/pkg/models"
	"lolscope/pkg/regions"
)

// RiotClient is the set of provider endpoints used by the lookups.
type RiotClient interface {
	GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*Account, error)
	GetSummonerByPuuid(ctx context.Context, puuid string) (*SummonerByPuuid, error)
	GetLeagueEntriesBySummonerId(ctx context.Context, summonerId string) ([]LeagueEntry, error)
	GetLeagueEntriesByPuuid(ctx context.Context, puuid string) ([]LeagueEntry, error)
	GetMatchIds(ctx context.Context, puuid string, start int, count int) ([]string, error)
	GetMatch(ctx context.Context, matchId string) (*models.Match, error)
}

// Endpoint labels used on logs and metrics.
const (
	endpointAccount  = "account"
	endpointSummoner = "summoner"
	endpointLeague   = "league"
	endpointMatchIds = "match-ids"
	endpointMatch    = "match"
)

// MainFetcher implements the RiotClient over the request primitive.
type MainFetcher struct {
	requests    *requests.Client
	platformURL string
	regionalURL string
}

// NewMainFetcher creates the fetcher for the configured platform.
// The base URLs can be overridden by the configuration.
func NewMainFetcher(cfg config.RiotConfiguration, client *requests.Client) (*MainFetcher, error) {
	platformURL := cfg.PlatformURL
	if platformURL == "" {
		platformURL = regions.PlatformHost(regions.SubRegion(cfg.Platform))
	}

	regionalURL := cfg.RegionalURL
	if regionalURL == "" {
		mainRegion, err := regions.GetMainRegion(cfg.Platform)
		if err != nil {
			return nil, err
		}
		regionalURL = regions.RegionalHost(mainRegion)
	}

	return &MainFetcher{
		requests:    client,
		platformURL: strings.TrimSuffix(platformURL, "/"),
		regionalURL: strings.TrimSuffix(regionalURL, "/"),
	}, nil
}
