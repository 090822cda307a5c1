package playerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lolscope/api/cache"
	"lolscope/fetcher/data"
	"lolscope/fetcher/requests"
	"lolscope/pkg/config"
	"lolscope/pkg/metrics"
	"lolscope/pkg/models"
	queuevalues "lolscope/pkg/riotvalues/queue"
	tiervalues "lolscope/pkg/riotvalues/tier"
	"lolscope/pkg/riotid"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ErrPlayerNotFound is returned when the provider has no account or summoner for the riot id.
var ErrPlayerNotFound = errors.New("player not found")

// Lookup results counted on the metrics.
const (
	lookupCached   = "cached"
	lookupFetched  = "fetched"
	lookupNotFound = "not_found"
	lookupFailed   = "failed"
)

// Defaults used when the dependencies leave them empty.
const (
	DefaultMatchCount     = 18
	DefaultRequestTimeout = time.Minute
	defaultMatchWorkers   = 6
)

// PlayerService builds the player view models, cache first on every step.
type PlayerService struct {
	client         data.RiotClient
	cache          *cache.Cache
	ttl            config.CacheConfiguration
	matchCount     int
	matchWorkers   int
	requestTimeout time.Duration
	group          singleflight.Group
	logger         zerolog.Logger
}

type PlayerServiceDeps struct {
	Client         data.RiotClient
	Cache          *cache.Cache
	CacheConfig    config.CacheConfiguration
	MatchCount     int
	RequestTimeout time.Duration
	Logger         zerolog.Logger
}

// NewPlayerService creates a service for handling player lookups.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	matchCount := deps.MatchCount
	if matchCount <= 0 {
		matchCount = DefaultMatchCount
	}

	requestTimeout := deps.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	return &PlayerService{
		client:         deps.Client,
		cache:          deps.Cache,
		ttl:            deps.CacheConfig,
		matchCount:     matchCount,
		matchWorkers:   defaultMatchWorkers,
		requestTimeout: requestTimeout,
		logger:         deps.Logger.With().Str("component", "player-service").Logger(),
	}
}

// Cache keys of each step. Identities are lower cased.
// Identity keys are unique since Validate rejects dashes in the tag.
func playerKey(gameName, tagLine string) string {
	return cache.GenerateKey("summoner", riotid.Key(gameName, tagLine))
}

func accountKey(gameName, tagLine string) string {
	return cache.GenerateKey("account", riotid.Key(gameName, tagLine))
}

func rankKey(id string) string {
	return cache.GenerateKey("rank", id)
}

func matchIdsKey(puuid string) string {
	return cache.GenerateKey("matchIds", puuid)
}

func matchKey(matchId string) string {
	return cache.GenerateKey("match", matchId)
}

// GetPlayerViewModel returns the player with rank and recent matches.
// Concurrent lookups of the same player share a single fetch, and each caller
// stops waiting once its own context is done.
func (ps *PlayerService) GetPlayerViewModel(ctx context.Context, gameName, tagLine string) (*models.Summoner, error) {
	gameName, tagLine, err := riotid.Validate(gameName, tagLine)
	if err != nil {
		return nil, err
	}

	key := playerKey(gameName, tagLine)

	// Short circuit on the whole player.
	var cached models.Summoner
	if ps.cache.Get(ctx, key, &cached) {
		metrics.PlayerLookups.WithLabelValues(lookupCached).Inc()
		return &cached, nil
	}

	result := ps.group.DoChan(key, func() (any, error) {
		// The fetch outlives the caller that started it.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ps.requestTimeout)
		defer cancel()

		return ps.fetchPlayer(fetchCtx, gameName, tagLine, key)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}

		// Callers sharing the fetch get their own copy.
		summoner := *res.Val.(*models.Summoner)
		return &summoner, nil
	}
}

// Invalidate removes the whole player entry only, the finer entries stay.
func (ps *PlayerService) Invalidate(ctx context.Context, gameName, tagLine string) error {
	gameName, tagLine, err := riotid.Validate(gameName, tagLine)
	if err != nil {
		return err
	}

	ps.cache.Remove(ctx, playerKey(gameName, tagLine))
	return nil
}

// Refresh invalidates the player and looks it up again.
func (ps *PlayerService) Refresh(ctx context.Context, gameName, tagLine string) (*models.Summoner, error) {
	if err := ps.Invalidate(ctx, gameName, tagLine); err != nil {
		return nil, err
	}
	return ps.GetPlayerViewModel(ctx, gameName, tagLine)
}

// ClearCache removes every cached entry and returns how many were removed.
func (ps *PlayerService) ClearCache(ctx context.Context) int {
	return ps.cache.ClearAll(ctx)
}

// fetchPlayer runs the lookup steps and caches the assembled player.
func (ps *PlayerService) fetchPlayer(ctx context.Context, gameName, tagLine, key string) (*models.Summoner, error) {
	logger := ps.logger.With().Str("gameName", gameName).Str("tagLine", tagLine).Logger()
	start := time.Now()

	summoner, err := ps.buildPlayer(ctx, gameName, tagLine)
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			metrics.PlayerLookups.WithLabelValues(lookupNotFound).Inc()
			logger.Info().Msg("player not found")
		} else {
			metrics.PlayerLookups.WithLabelValues(lookupFailed).Inc()
			logger.Error().Err(err).Msg("player lookup failed")
		}
		return nil, err
	}

	ps.cache.Set(ctx, key, summoner, ps.ttl.PlayerTTL)
	metrics.PlayerLookups.WithLabelValues(lookupFetched).Inc()
	logger.Info().Int("matches", len(summoner.Matches)).Dur("took", time.Since(start)).Msg("player fetched")

	return summoner, nil
}

func (ps *PlayerService) buildPlayer(ctx context.Context, gameName, tagLine string) (*models.Summoner, error) {
	account, err := ps.getAccount(ctx, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	summoner, err := ps.client.GetSummonerByPuuid(ctx, account.Puuid)
	if err != nil {
		if errors.Is(err, requests.ErrNotFound) {
			return nil, fmt.Errorf("%w: no summoner for %s#%s", ErrPlayerNotFound, gameName, tagLine)
		}
		return nil, fmt.Errorf("couldn't get the summoner: %w", err)
	}

	rank := ps.getRank(ctx, summoner)

	matchIds, err := ps.getMatchIds(ctx, account.Puuid)
	if err != nil {
		return nil, err
	}

	return &models.Summoner{
		Puuid:         account.Puuid,
		Name:          account.GameName,
		Tag:           account.TagLine,
		ProfileIconId: summoner.ProfileIconId,
		SummonerLevel: summoner.SummonerLevel,
		Rank:          rank,
		Matches:       ps.getMatches(ctx, matchIds),
	}, nil
}

// getAccount resolves the riot id to a account.
func (ps *PlayerService) getAccount(ctx context.Context, gameName, tagLine string) (*data.Account, error) {
	key := accountKey(gameName, tagLine)

	var account data.Account
	if ps.cache.Get(ctx, key, &account) {
		return &account, nil
	}

	fetched, err := ps.client.GetAccountByRiotId(ctx, gameName, tagLine)
	if err != nil {
		if errors.Is(err, requests.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s#%s", ErrPlayerNotFound, gameName, tagLine)
		}
		return nil, fmt.Errorf("couldn't resolve the account: %w", err)
	}

	// Keep the searched names when the provider omits them.
	if fetched.GameName == "" {
		fetched.GameName = gameName
	}
	if fetched.TagLine == "" {
		fetched.TagLine = tagLine
	}

	ps.cache.Set(ctx, key, fetched, ps.ttl.AccountTTL)
	return fetched, nil
}

// getRank returns the displayed rank, nil when unranked or unavailable.
func (ps *PlayerService) getRank(ctx context.Context, summoner *data.SummonerByPuuid) *models.RankInfo {
	id := summoner.Id
	fetch := ps.client.GetLeagueEntriesBySummonerId
	if id == "" {
		id = summoner.Puuid
		fetch = ps.client.GetLeagueEntriesByPuuid
	}
	key := rankKey(id)

	var entries []data.LeagueEntry
	if ps.cache.Get(ctx, key, &entries) {
		return SelectRank(entries)
	}

	entries, err := fetch(ctx, id)
	if err != nil {
		ps.logger.Warn().Err(err).Str("id", id).Msg("couldn't get the league entries")
		return nil
	}
	if entries == nil {
		entries = []data.LeagueEntry{}
	}

	ps.cache.Set(ctx, key, entries, ps.ttl.RankTTL)
	return SelectRank(entries)
}

// SelectRank picks the solo queue entry, or the highest rated one otherwise.
func SelectRank(entries []data.LeagueEntry) *models.RankInfo {
	var best *data.LeagueEntry
	bestScore := -1

	for i := range entries {
		entry := &entries[i]
		if entry.QueueType == nil || entry.Tier == nil {
			continue
		}

		if *entry.QueueType == queuevalues.SoloQueueType {
			best = entry
			break
		}

		score := tiervalues.CalculateRank(*entry.Tier, deref(entry.Rank), entry.LeaguePoints)
		if score > bestScore {
			best = entry
			bestScore = score
		}
	}

	if best == nil {
		return nil
	}

	return &models.RankInfo{
		QueueType:    *best.QueueType,
		Tier:         *best.Tier,
		Division:     deref(best.Rank),
		LeaguePoints: best.LeaguePoints,
		Wins:         best.Wins,
		Losses:       best.Losses,
	}
}

// getMatchIds returns the most recent match ids, a failure aborts the lookup.
func (ps *PlayerService) getMatchIds(ctx context.Context, puuid string) ([]string, error) {
	key := matchIdsKey(puuid)

	var ids []string
	if ps.cache.Get(ctx, key, &ids) {
		return ids, nil
	}

	ids, err := ps.client.GetMatchIds(ctx, puuid, 0, ps.matchCount)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the match list: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}

	ps.cache.Set(ctx, key, ids, ps.ttl.MatchIdsTTL)
	return ids, nil
}

// getMatches fetches every match in parallel keeping the given order.
// Matches that fail to load are dropped.
func (ps *PlayerService) getMatches(ctx context.Context, matchIds []string) []models.Match {
	results := make([]*models.Match, len(matchIds))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(ps.matchWorkers)

	for i, matchId := range matchIds {
		i, matchId := i, matchId
		g.Go(func() error {
			match, err := ps.getMatch(gCtx, matchId)
			if err != nil {
				metrics.DroppedMatches.Inc()
				ps.logger.Warn().Err(err).Str("matchId", matchId).Msg("dropping match")
				return nil
			}

			results[i] = match
			return nil
		})
	}
	// Failed matches are dropped inside the goroutines, none returns an error.
	_ = g.Wait()

	matches := make([]models.Match, 0, len(matchIds))
	for _, match := range results {
		if match != nil {
			matches = append(matches, *match)
		}
	}
	return matches
}

func (ps *PlayerService) getMatch(ctx context.Context, matchId string) (*models.Match, error) {
	key := matchKey(matchId)

	var match models.Match
	if ps.cache.Get(ctx, key, &match) {
		return &match, nil
	}

	fetched, err := ps.client.GetMatch(ctx, matchId)
	if err != nil {
		return nil, err
	}

	ps.cache.Set(ctx, key, fetched, ps.ttl.MatchTTL)
	return fetched, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
