package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// APIClient handles communication with the GambaBot Core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// APIError is an error response from the Core API. Reason carries the stable
// machine code the API attaches to rejections.
type APIError struct {
	StatusCode int
	Message    string
	Reason     string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %s", e.Message)
	}
	return fmt.Sprintf("API returned status: %d", e.StatusCode)
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := fmt.Sprintf("%s%s", c.BaseURL, path)

	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeAPIError reads the error payload from a failed response
func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		Error  string `json:"error"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error, Reason: errResp.Reason}
	}
	return &APIError{StatusCode: resp.StatusCode}
}

// RegisterResult is the API response for a successful registration
type RegisterResult struct {
	Message string `json:"message"`
	Year    int    `json:"year"`
}

// Register enrolls the Discord user into the current year's game
func (c *APIClient) Register(discordID string) (*RegisterResult, error) {
	req := map[string]string{
		"discord_id": discordID,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/player/register", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var result RegisterResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// BetView is a single bet as returned by the API
type BetView struct {
	ID          int64   `json:"id"`
	MarketID    string  `json:"market_id"`
	MarketTitle string  `json:"market_title"`
	Position    string  `json:"position"`
	PriceCents  int     `json:"price_cents"`
	StakeCents  int     `json:"stake_cents"`
	PlacedAt    string  `json:"placed_at"`
	Outcome     *string `json:"outcome,omitempty"`
	PayoutCents *int    `json:"payout_cents,omitempty"`
}

// PlaceBetResult is the API response for a committed bet
type PlaceBetResult struct {
	Bet                  BetView `json:"bet"`
	RemainingBets        int     `json:"remaining_bets"`
	PotentialPayoutCents int     `json:"potential_payout_cents"`
}

// PlaceBet places a bet on the referenced market
func (c *APIClient) PlaceBet(discordID, market, position string) (*PlaceBetResult, error) {
	req := map[string]string{
		"discord_id": discordID,
		"market":     market,
		"position":   position,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/bet/place", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var result PlaceBetResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// BetListResult is the API response for a player's bet listing
type BetListResult struct {
	Bets                  []BetView `json:"bets"`
	RemainingBets         int       `json:"remaining_bets"`
	TotalCents            int       `json:"total_cents"`
	BiggestWinCents       int       `json:"biggest_win_cents"`
	PendingPotentialCents int       `json:"pending_potential_cents"`
}

// ListBets retrieves all of the player's bets for the current season
func (c *APIClient) ListBets(discordID string) (*BetListResult, error) {
	params := url.Values{}
	params.Set("discord_id", discordID)

	path := fmt.Sprintf("/api/v1/bet/list?%s", params.Encode())
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var result BetListResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// LeaderboardEntryView is a single leaderboard row as returned by the API
type LeaderboardEntryView struct {
	DiscordID       string `json:"discord_id"`
	TotalCents      int    `json:"total_cents"`
	BiggestWinCents int    `json:"biggest_win_cents"`
	PendingCount    int    `json:"pending_count"`
	MaxReturnCents  int    `json:"max_return_cents"`
	RemainingBets   int    `json:"remaining_bets"`
}

// LeaderboardResult is the API response for the season standings
type LeaderboardResult struct {
	Year         int                    `json:"year"`
	Entries      []LeaderboardEntryView `json:"entries"`
	TotalPlayers int                    `json:"total_players"`
}

// GetLeaderboard retrieves the current season standings
func (c *APIClient) GetLeaderboard() (*LeaderboardResult, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/leaderboard", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var result LeaderboardResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
