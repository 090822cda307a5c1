package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Riot API configuration.
type RiotConfiguration struct {
	ApiKey      string
	Platform    string
	PlatformURL string
	RegionalURL string
	MatchCount  int
	MaxRetries  int
	Timeout     time.Duration
	Limits      LimitsConfiguration
}

// Rate limit windows applied to the Riot API.
type LimitsConfiguration struct {
	Short RiotLimit
	Long  RiotLimit
}

// Single rate limit window.
type RiotLimit struct {
	Count         int
	ResetInterval time.Duration
}

// Cache TTLs for each cached entity.
type CacheConfiguration struct {
	Prefix      string
	PlayerTTL   time.Duration
	AccountTTL  time.Duration
	RankTTL     time.Duration
	MatchIdsTTL time.Duration
	MatchTTL    time.Duration
}

// Key value store configuration.
type StoreConfiguration struct {
	Backend    string
	BadgerPath string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Postgres configuration.
type DatabaseConfiguration struct {
	URL string
}

// Bucket used for archiving the log files.
type BucketConfiguration struct {
	Endpoint     string
	Region       string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// HTTP and gRPC servers configuration.
type ServerConfiguration struct {
	Port            string
	GrpcPort        string
	LogLevel        string
	ClientRateLimit float64
	ClientRateBurst int
	RequestTimeout  time.Duration
	AllowedOrigins  []string
}

// Config is the full application configuration.
type Config struct {
	Riot         RiotConfiguration
	Cache        CacheConfiguration
	Store        StoreConfiguration
	Redis        RedisConfiguration
	Database     DatabaseConfiguration
	Bucket       BucketConfiguration
	Server       ServerConfiguration
	FavoritesMax int
}

// ErrMissingApiKey is returned when no Riot API key is configured.
var ErrMissingApiKey = errors.New("RIOT_API_KEY is required")

// Load reads the .env file, if any, and builds the configuration from the environment.
func Load() (*Config, error) {
	// The .env file is optional, containers receive the variables directly.
	_ = godotenv.Load()

	p := &parser{}
	cfg := &Config{
		Riot: RiotConfiguration{
			ApiKey:      os.Getenv("RIOT_API_KEY"),
			Platform:    strings.ToUpper(getEnv("RIOT_PLATFORM", "EUW1")),
			PlatformURL: os.Getenv("RIOT_PLATFORM_URL"),
			RegionalURL: os.Getenv("RIOT_REGIONAL_URL"),
			MatchCount:  p.int("RIOT_MATCH_COUNT", 18),
			MaxRetries:  p.int("RIOT_MAX_RETRIES", 2),
			Timeout:     p.duration("RIOT_TIMEOUT", 10*time.Second),
			Limits: LimitsConfiguration{
				Short: RiotLimit{
					Count:         p.int("RIOT_LIMIT_SHORT_COUNT", 20),
					ResetInterval: p.duration("RIOT_LIMIT_SHORT_INTERVAL", time.Second),
				},
				Long: RiotLimit{
					Count:         p.int("RIOT_LIMIT_LONG_COUNT", 100),
					ResetInterval: p.duration("RIOT_LIMIT_LONG_INTERVAL", 2*time.Minute),
				},
			},
		},
		Cache: CacheConfiguration{
			Prefix:      getEnv("CACHE_PREFIX", "lol-app-cache-"),
			PlayerTTL:   p.duration("CACHE_PLAYER_TTL", 15*time.Minute),
			AccountTTL:  p.duration("CACHE_ACCOUNT_TTL", 15*time.Minute),
			RankTTL:     p.duration("CACHE_RANK_TTL", 15*time.Minute),
			MatchIdsTTL: p.duration("CACHE_MATCH_IDS_TTL", 10*time.Minute),
			MatchTTL:    p.duration("CACHE_MATCH_TTL", time.Hour),
		},
		Store: StoreConfiguration{
			Backend:    strings.ToLower(getEnv("STORE_BACKEND", "badger")),
			BadgerPath: getEnv("BADGER_PATH", "data/badger"),
		},
		Redis: RedisConfiguration{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Database: DatabaseConfiguration{
			URL: os.Getenv("DATABASE_URL"),
		},
		Bucket: BucketConfiguration{
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			Region:       os.Getenv("BUCKET_REGION"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			LogBucket:    os.Getenv("LOG_BUCKET"),
		},
		Server: ServerConfiguration{
			Port:            getEnv("SERVER_PORT", "8080"),
			GrpcPort:        getEnv("GRPC_PORT", "50051"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			ClientRateLimit: p.float("CLIENT_RATE_LIMIT", 5),
			ClientRateBurst: p.int("CLIENT_RATE_BURST", 10),
			RequestTimeout:  p.duration("REQUEST_TIMEOUT", time.Minute),
			AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		FavoritesMax: p.int("FAVORITES_MAX", 20),
	}

	if p.err != nil {
		return nil, p.err
	}

	if cfg.Riot.ApiKey == "" {
		return nil, ErrMissingApiKey
	}

	return cfg, nil
}

// LogUploadEnabled reports if the log archive bucket is configured.
func (b BucketConfiguration) LogUploadEnabled() bool {
	return b.Endpoint != "" && b.LogBucket != ""
}

// getEnv returns the variable value or the fallback when unset.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// parser keeps the first parsing error so Load can report it once.
type parser struct {
	err error
}

func (p *parser) int(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return value
}

func (p *parser) float(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return value
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return value
}

func (p *parser) fail(key string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid value for %s: %w", key, err)
	}
}

// splitList splits a comma separated variable, dropping empty items.
func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
