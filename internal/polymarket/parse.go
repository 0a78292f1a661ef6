package polymarket

import "regexp"

// Reference shapes accepted from users:
//
//	polymarket.com/event/{event}/{market}  -> market slug
//	polymarket.com/event/{event}           -> event slug, market chosen from the event
//	polymarket.com/market/{market}         -> market slug
var (
	eventMarketRe = regexp.MustCompile(`polymarket\.com/event/([^/?#]+)/([^/?#]+)`)
	eventOnlyRe   = regexp.MustCompile(`polymarket\.com/event/([^/?#]+)`)
	marketRe      = regexp.MustCompile(`polymarket\.com/market/([^/?#]+)`)
)

// ParseReference extracts the event and/or market slug from a Polymarket URL.
// Exactly one of the two returned slugs is non-empty on a match; both are
// empty when the URL is not a recognized reference.
func ParseReference(url string) (eventSlug, marketSlug string) {
	if m := eventMarketRe.FindStringSubmatch(url); m != nil {
		return "", m[2]
	}
	if m := eventOnlyRe.FindStringSubmatch(url); m != nil {
		return m[1], ""
	}
	if m := marketRe.FindStringSubmatch(url); m != nil {
		return "", m[1]
	}
	return "", ""
}
