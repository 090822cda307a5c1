package requests

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lolscope/pkg/config"
	"lolscope/pkg/messages"
	"lolscope/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

// Name of the query parameter carrying the credential.
const apiKeyParam = "api_key"

// Client is the request primitive shared by every provider endpoint.
// Every call waits on the rate limiter, goes through the circuit breaker and
// retries rate limited and server errors with exponential backoff.
type Client struct {
	apiKey         string
	httpClient     *http.Client
	limiter        *RateLimiter
	breaker        *gobreaker.CircuitBreaker[[]byte]
	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         zerolog.Logger
}

// ClientOption customizes the client.
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBackoff sets the initial and maximum interval between retries.
func WithBackoff(initial, max time.Duration) ClientOption {
	return func(c *Client) {
		c.initialBackoff = initial
		c.maxBackoff = max
	}
}

// WithRateLimiter replaces the rate limiter.
func WithRateLimiter(limiter *RateLimiter) ClientOption {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// NewClient creates the request client from the riot configuration.
func NewClient(cfg config.RiotConfiguration, logger zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:         cfg.ApiKey,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		limiter:        NewRateLimiter(cfg.Limits.Short, cfg.Limits.Long),
		maxRetries:     max(cfg.MaxRetries, 0),
		initialBackoff: 500 * time.Millisecond,
		maxBackoff:     10 * time.Second,
		logger:         logger.With().Str("component", "riot-client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "riot-api",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		// Opens after 60% failures with at least 10 requests.
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		// Client errors and cancellations don't say anything about the provider health.
		IsSuccessful: func(err error) bool {
			return err == nil || !breakerFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})

	return c
}

// Get issues a authenticated GET and decodes the JSON body into dest.
// The endpoint name only labels logs and metrics.
func (c *Client) Get(ctx context.Context, endpoint string, rawURL string, params map[string]string, dest any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %s: %w", rawURL, err)
	}

	// URL without the query, safe to log.
	safeURL := u.Scheme + "://" + u.Host + u.EscapedPath()

	query := u.Query()
	for key, value := range params {
		query.Set(key, value)
	}
	query.Set(apiKeyParam, c.apiKey)
	u.RawQuery = query.Encode()
	fullURL := u.String()

	policy := &retryAfterBackOff{BackOff: c.newBackOff()}
	var body []byte

	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		result, err := c.breaker.Execute(func() ([]byte, error) {
			return c.do(ctx, endpoint, fullURL, safeURL)
		})
		if err == nil {
			body = result
			return nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return backoff.Permanent(fmt.Errorf("%w: %s: %v", ErrTransport, safeURL, err))
		}

		if !retryable(err) {
			return backoff.Permanent(err)
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			policy.next = apiErr.RetryAfter
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		metrics.ProviderRetries.WithLabelValues(endpoint).Inc()
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Dur("wait", wait).Msg("retrying provider request")
	}

	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxRetries)), ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		return err
	}

	// Parse the body.
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: %s on URL %s: %v", ErrTransport, messages.FailedToParseMsg, safeURL, err)
	}

	return nil
}

// do runs a single request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, endpoint string, fullURL string, safeURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't create the request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		metrics.RecordProviderRequest(endpoint, 0)

		// The url.Error carries the full URL, keep only the cause.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%w: "+messages.RequestFailedMsg+": %v", ErrTransport, safeURL, err)
	}
	defer resp.Body.Close()

	metrics.RecordProviderRequest(endpoint, resp.StatusCode)

	// Check the status code.
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			URL:        safeURL,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s on URL %s: %v", ErrTransport, messages.FailedToParseMsg, safeURL, err)
	}

	return body, nil
}

// newBackOff creates the exponential policy used between retries.
func (c *Client) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialBackoff
	b.MaxInterval = c.maxBackoff
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// retryAfterBackOff replaces the next interval with the provider Retry-After, when given.
type retryAfterBackOff struct {
	backoff.BackOff
	next time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	d := b.BackOff.NextBackOff()
	if d == backoff.Stop {
		return d
	}

	if b.next > 0 {
		d = b.next
		b.next = 0
	}
	return d
}

// parseRetryAfter reads a Retry-After header in seconds.
func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
