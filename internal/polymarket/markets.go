package polymarket

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"

	"github.com/osse101/GambaBot_Go/internal/domain"
)

const (
	gammaMarketsPath = "/markets"
	gammaEventsPath  = "/events"

	// umaStatusResolved is the only status that counts as final resolution;
	// a closed market may still be awaiting the resolution process.
	umaStatusResolved = "resolved"
)

// ResolveMarket turns a user-supplied market reference into a fresh snapshot.
// Unknown references, multi-outcome markets and transport failures all come
// back as nil; the caller treats nil as market-not-found.
func (c *Client) ResolveMarket(ctx context.Context, reference string) (*domain.MarketInfo, error) {
	eventSlug, marketSlug := ParseReference(reference)

	if marketSlug != "" {
		return c.GetMarket(ctx, marketSlug)
	}

	if eventSlug != "" {
		slug, err := c.GetEventMarketSlug(ctx, eventSlug)
		if err != nil || slug == "" {
			return nil, err
		}
		return c.GetMarket(ctx, slug)
	}

	return nil, nil
}

// GetMarket fetches a market snapshot by slug. Returns nil for markets that
// are unknown, non-binary, or carry malformed prices.
func (c *Client) GetMarket(ctx context.Context, slug string) (*domain.MarketInfo, error) {
	u := fmt.Sprintf("%s%s?slug=%s", c.gammaBase, gammaMarketsPath, url.QueryEscape(slug))

	var markets []gammaMarket
	if err := c.get(ctx, u, &markets); err != nil {
		slog.Debug("gamma market lookup failed", "slug", slug, "error", err)
		return nil, nil
	}
	if len(markets) == 0 {
		return nil, nil
	}

	return marketToInfo(markets[0]), nil
}

// GetEventMarketSlug resolves an event-only reference to its market slug.
// Only events holding exactly one binary market are accepted; anything else
// is ambiguous and treated as not-found.
func (c *Client) GetEventMarketSlug(ctx context.Context, eventSlug string) (string, error) {
	u := fmt.Sprintf("%s%s?slug=%s", c.gammaBase, gammaEventsPath, url.QueryEscape(eventSlug))

	var events []gammaEvent
	if err := c.get(ctx, u, &events); err != nil {
		slog.Debug("gamma event lookup failed", "slug", eventSlug, "error", err)
		return "", nil
	}
	if len(events) == 0 {
		return "", nil
	}

	event := events[0]
	if len(event.Markets) != 1 {
		return "", nil
	}
	if !event.Markets[0].Outcomes.binary() {
		return "", nil
	}
	return event.Markets[0].Slug, nil
}

// CheckResolution queries whether the market has reached final resolution.
// Closed-for-trading is not resolution; only the UMA resolved status counts.
// A resolved market with missing or malformed prices voids rather than
// guessing a winner, as does an exact price tie.
func (c *Client) CheckResolution(ctx context.Context, marketID string) (domain.Resolution, error) {
	u := fmt.Sprintf("%s%s/%s", c.gammaBase, gammaMarketsPath, url.PathEscape(marketID))

	var market gammaMarket
	if err := c.get(ctx, u, &market); err != nil {
		slog.Debug("gamma resolution check failed", "market_id", marketID, "error", err)
		return domain.ResolutionUnresolved, nil
	}

	if market.UMAResolutionStatus != umaStatusResolved {
		return domain.ResolutionUnresolved, nil
	}

	yes, no, err := market.OutcomePrices.prices()
	if err != nil {
		return domain.ResolutionVoid, nil
	}

	switch {
	case yes > no:
		return domain.ResolutionYes, nil
	case no > yes:
		return domain.ResolutionNo, nil
	default:
		return domain.ResolutionVoid, nil
	}
}

// marketToInfo converts a raw Gamma market into a snapshot, or nil when the
// market is unusable for binary betting.
func marketToInfo(m gammaMarket) *domain.MarketInfo {
	if m.ID == "" {
		return nil
	}

	title := m.Question
	if title == "" {
		title = m.Title
	}
	if title == "" {
		return nil
	}

	if len(m.Outcomes) > 0 && !m.Outcomes.binary() {
		return nil
	}

	yes, no, err := m.OutcomePrices.prices()
	if err != nil {
		return nil
	}

	// Probabilities to cents, rounding up so the displayed price never
	// understates what the bettor pays.
	yesCents := int(math.Ceil(yes * 100))
	noCents := int(math.Ceil(no * 100))
	if yesCents <= 0 || noCents <= 0 {
		return nil
	}

	info := &domain.MarketInfo{
		Platform: domain.PlatformPolymarket,
		MarketID: m.ID,
		Title:    title,
		YesCents: yesCents,
		NoCents:  noCents,
		Resolved: m.Closed,
	}

	// A closed market trading at the extremes carries a provisional winner;
	// final settlement still goes through CheckResolution.
	if m.Closed {
		if yesCents >= 99 {
			info.Resolution = domain.ResolutionYes
		} else if yesCents <= 1 {
			info.Resolution = domain.ResolutionNo
		}
	}

	return info
}
