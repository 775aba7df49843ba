package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
)

// BreakerClient wraps a Client with per-host circuit breakers. A host that
// keeps failing is cut off for a backoff window instead of being hammered.
type BreakerClient struct {
	client   *Client
	breakers map[string]*circuit.Breaker
	mu       sync.RWMutex
}

// NewBreakerClient creates a circuit breaker wrapper around a client.
func NewBreakerClient(c *Client) *BreakerClient {
	return &BreakerClient{
		client:   c,
		breakers: make(map[string]*circuit.Breaker),
	}
}

// Close releases the underlying client's resources.
func (b *BreakerClient) Close() {
	b.client.Close()
}

// getBreaker returns or creates the circuit breaker for a host.
func (b *BreakerClient) getBreaker(host string) *circuit.Breaker {
	b.mu.RLock()
	breaker, exists := b.breakers[host]
	b.mu.RUnlock()

	if exists {
		return breaker
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Double-check after acquiring write lock
	if breaker, exists := b.breakers[host]; exists {
		return breaker
	}

	// Trips after 5 consecutive failures, recovers on exponential backoff
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	opts := &circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	}
	breaker = circuit.NewBreakerWithOptions(opts)

	b.breakers[host] = breaker
	return breaker
}

// GetBody wraps the underlying client's GetBody with circuit breaker logic.
// Client errors (4xx other than 429) do not count against the breaker.
func (b *BreakerClient) GetBody(ctx context.Context, rawURL string) ([]byte, error) {
	host := hostOf(rawURL)
	breaker := b.getBreaker(host)

	if !breaker.Ready() {
		return nil, fmt.Errorf("circuit breaker open for %s: %w", host, ErrUpstreamDown)
	}

	var body []byte
	var getErr error
	err := breaker.Call(func() error {
		body, getErr = b.client.GetBody(ctx, rawURL)
		var httpErr *HTTPError
		if errors.As(getErr, &httpErr) && httpErr.StatusCode < 500 && httpErr.StatusCode != 429 {
			return nil // a 4xx is an answer, not an outage
		}
		return getErr
	}, 0)

	if getErr != nil {
		return nil, getErr
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

// State returns the current state of all circuit breakers, keyed by host.
func (b *BreakerClient) State() map[string]string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	states := make(map[string]string)
	for host, breaker := range b.breakers {
		if breaker.Tripped() {
			states[host] = "open"
		} else {
			states[host] = "closed"
		}
	}
	return states
}

// hostOf extracts the host from a URL for circuit breaker grouping.
func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return parsed.Host
}
