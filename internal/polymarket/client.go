package polymarket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultGammaBase = "https://gamma-api.polymarket.com"

	// Gamma documents 300 req/10s; stay at 60% of that.
	gammaRatePerSec = 18

	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
)

// errStatus is returned for non-2xx responses that are not retried.
type errStatus struct {
	code int
}

func (e errStatus) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// Client is the Polymarket Gamma API client with rate limiting and retries.
type Client struct {
	http      *http.Client
	gammaBase string
	limiter   *rate.Limiter
}

// NewClient creates a Client for the given Gamma base URL. An empty base
// selects the production API.
func NewClient(gammaBase string) *Client {
	if gammaBase == "" {
		gammaBase = defaultGammaBase
	}
	return &Client{
		http:      &http.Client{Timeout: 10 * time.Second},
		gammaBase: gammaBase,
		limiter:   rate.NewLimiter(gammaRatePerSec, 10),
	}
}

// get performs a rate-limited GET with retries on 429/5xx and decodes the
// JSON response into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			if attempt == maxRetries {
				return fmt.Errorf("request failed after %d retries: %w", maxRetries, err)
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			if attempt == maxRetries {
				return fmt.Errorf("gamma error %d after %d retries", resp.StatusCode, maxRetries)
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return errStatus{code: resp.StatusCode}
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unreachable")
}

// sleep waits with exponential backoff and jitter, respecting ctx.
func (c *Client) sleep(ctx context.Context, attempt int) {
	wait := baseRetryWait << attempt
	wait += time.Duration(rand.Int63n(int64(baseRetryWait)))
	select {
	case <-ctx.Done():
	case <-time.After(wait):
	}
}
