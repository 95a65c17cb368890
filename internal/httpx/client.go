// Package httpx wraps outbound HTTP calls with the resilience the external
// weather and geocoding services need: retries with exponential backoff and
// a per-upstream circuit breaker.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	errUnexpected  = errors.New("unexpected status code")
	errCircuitOpen = errors.New("circuit breaker open")
)

// Backoff controls retry behaviour for one upstream.
type Backoff struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func defaultBackoff() Backoff {
	return Backoff{
		MaxRetries:      2,
		InitialInterval: 300 * time.Millisecond,
		MaxInterval:     3 * time.Second,
	}
}

// Upstream bundles the shared HTTP client, retry policy, and circuit breaker
// for one external service.
type Upstream struct {
	client  *http.Client
	backoff Backoff
	circuit *gobreaker.CircuitBreaker
}

// NewUpstream builds an Upstream named for circuit-breaker reporting. A nil
// client gets a 10-second-timeout default.
func NewUpstream(client *http.Client, name string) Upstream {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return Upstream{
		client:  client,
		backoff: defaultBackoff(),
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
	}
}

// GetJSON fetches url and decodes the body into v, retrying transient
// failures with exponential backoff behind the circuit breaker.
func (u Upstream) GetJSON(ctx context.Context, url string, v any) error {
	var lastErr error

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := u.circuit.Execute(func() (any, error) {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if reqErr != nil {
				return nil, reqErr
			}
			resp, doErr := u.client.Do(req)
			if doErr != nil {
				return nil, doErr
			}
			switch {
			case resp.StatusCode == http.StatusTooManyRequests:
				resp.Body.Close()
				return nil, errRateLimited
			case resp.StatusCode >= 500:
				resp.Body.Close()
				return nil, errServerError
			case resp.StatusCode < 200 || resp.StatusCode >= 300:
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}
			return resp, nil
		})
		if err == nil {
			resp := result.(*http.Response)
			decodeErr := json.NewDecoder(resp.Body).Decode(v)
			resp.Body.Close()
			if decodeErr != nil {
				return fmt.Errorf("decode response: %w", decodeErr)
			}
			return nil
		}

		// An open breaker means the upstream is known-bad; fail immediately.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= u.backoff.MaxRetries {
			return lastErr
		}

		delay := u.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if u.backoff.MaxInterval > 0 && delay > u.backoff.MaxInterval {
			delay = u.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
