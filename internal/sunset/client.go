package sunset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"smart_hub/internal/logger"
	"smart_hub/internal/metrics"
	"smart_hub/internal/models"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

const (
	DefaultBaseURL = "https://api.sunrise-sunset.org"
	DefaultTimeout = 10 * time.Second

	statusOK          = "OK"
	maxErrorBodyBytes = 256
)

var (
	ErrLookupFailed = errors.New("sunset lookup failed")

	errProviderStatus = errors.New("sunset provider returned non-OK status")
	errMalformed      = errors.New("malformed sunset response")
)

// Config tunes the provider client.
type Config struct {
	BaseURL string
	// Timeout bounds a whole Resolve call, retries included.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts after a transient failure.
	MaxRetries int
	// BreakerFailures consecutive failures open the breaker for BreakerOpenFor.
	BreakerFailures uint32
	BreakerOpenFor  time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.BreakerFailures == 0 {
		c.BreakerFailures = 3
	}
	if c.BreakerOpenFor <= 0 {
		c.BreakerOpenFor = time.Minute
	}
	return c
}

// Client resolves sunset times from api.sunrise-sunset.org.
type Client struct {
	cfg        Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *logger.Logger
	metrics    *metrics.Metrics
}

func NewClient(cfg Config, log *logger.Logger, m *metrics.Metrics) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "sunset-provider",
			Timeout: cfg.BreakerOpenFor,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= cfg.BreakerFailures
			},
		}),
		log:     log,
		metrics: m,
	}
}

type apiResponse struct {
	Results struct {
		Sunset string `json:"sunset"`
	} `json:"results"`
	Status string `json:"status"`
}

// Resolve returns today's sunset at the coordinate as a UTC time of day.
// Every failure is logged and reported as false; callers apply their own fallback.
func (c *Client) Resolve(ctx context.Context, latitude, longitude float64) (models.TimeOfDay, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	t, err := c.lookup(ctx, latitude, longitude)
	if err != nil {
		if c.log != nil {
			c.log.Warnw("sunset_lookup_failed", "err", err, "lat", latitude, "lng", longitude)
		}
		c.metrics.ObserveSunsetLookup(metrics.ResultFallback)
		return models.TimeOfDay{}, false
	}
	if c.log != nil {
		c.log.Debugw("sunset_lookup_ok", "sunset_utc", t.String(), "lat", latitude, "lng", longitude)
	}
	c.metrics.ObserveSunsetLookup(metrics.ResultOK)
	return t, true
}

func (c *Client) lookup(ctx context.Context, latitude, longitude float64) (models.TimeOfDay, error) {
	var out models.TimeOfDay
	op := func() error {
		res, err := c.breaker.Execute(func() (any, error) {
			return c.fetch(ctx, latitude, longitude)
		})
		if err != nil {
			if isPermanent(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = res.(models.TimeOfDay)
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = c.cfg.Timeout
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.cfg.MaxRetries)), ctx)

	if err := backoff.Retry(op, policy); err != nil {
		return models.TimeOfDay{}, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	return out, nil
}

// isPermanent reports errors a retry cannot fix.
func isPermanent(err error) bool {
	var se *statusError
	return errors.Is(err, errProviderStatus) ||
		errors.Is(err, errMalformed) ||
		errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) ||
		(errors.As(err, &se) && se.code < http.StatusInternalServerError)
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("sunset provider status %d: %s", e.code, e.body)
}

func (c *Client) endpoint(latitude, longitude float64) string {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("formatted", "0")
	return c.cfg.BaseURL + "/json?" + q.Encode()
}

func (c *Client) fetch(ctx context.Context, latitude, longitude float64) (models.TimeOfDay, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(latitude, longitude), nil)
	if err != nil {
		return models.TimeOfDay{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.TimeOfDay{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return models.TimeOfDay{}, &statusError{code: resp.StatusCode, body: string(b)}
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.TimeOfDay{}, fmt.Errorf("%w: %w", errMalformed, err)
	}
	if out.Status != statusOK {
		return models.TimeOfDay{}, fmt.Errorf("%w: %q", errProviderStatus, out.Status)
	}
	ts, err := time.Parse(time.RFC3339, out.Results.Sunset)
	if err != nil {
		return models.TimeOfDay{}, fmt.Errorf("%w: sunset %q: %w", errMalformed, out.Results.Sunset, err)
	}
	return models.TimeOfDayOf(ts), nil
}
