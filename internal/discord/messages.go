package discord

// Friendly message constants for Discord responses
const (
	MsgNotRegistered = "👤 **Not Registered**\nYou haven't joined this year's game. Use `/register` during January!"
	MsgAlreadyRegistered = "✅ **Already In**\nYou're registered for this year's game."
	MsgRegistrationClosed = "🗓️ **Registration Closed**\nNew players can only join during January. See you next year!"
	MsgQuotaExhausted = "🎟️ **Out of Bets**\nYou've used your bets for this month. Your allowance resets on the 1st."
	MsgMarketNotFound = "❓ **Market Not Found**\nDouble-check the Polymarket link or slug."
	MsgDuplicateMarket = "♻️ **Already Bet**\nYou already have a bet on this market. Pick a different one."
	MsgMarketClosed = "🔒 **Market Closed**\nThat market has already resolved. Find one that's still open."
	MsgInvalidPrice = "📉 **Bad Odds**\nThat market's prices don't allow a bet right now."

	MsgGenericError = "❌ Something went wrong."
)

// friendlyMessages maps API reason codes to Discord-friendly messages
var friendlyMessages = map[string]string{
	"not_registered":      MsgNotRegistered,
	"already_registered":  MsgAlreadyRegistered,
	"registration_closed": MsgRegistrationClosed,
	"quota_exhausted":     MsgQuotaExhausted,
	"market_not_found":    MsgMarketNotFound,
	"duplicate_market":    MsgDuplicateMarket,
	"market_closed":       MsgMarketClosed,
	"invalid_price":       MsgInvalidPrice,
}

// rulesText is the game explainer shown by /gambarules
const rulesText = `**Welcome to Gamba!** 🎲

A year-long game of prediction market betting with friends.

**Joining**
• Register with ` + "`/register`" + ` - but only during **January**. Miss it and you wait a year.

**Betting**
• Place bets on Polymarket binary markets with ` + "`/bet`" + `.
• **January:** 16 bets. **Every other month:** 1 bet. Unused bets don't roll over.
• One bet per market per year - no doubling up.

**Stakes**
Your stake is fixed by the quarter you bet in:
• Q1 (Jan–Mar): **$1** • Q2 (Apr–Jun): **$2** • Q3 (Jul–Sep): **$3** • Q4 (Oct–Dec): **$4**

**Payouts**
• Win: stake × 100 / price in cents. Long shots pay big.
• Lose or market voids: nothing.

**Standings**
• ` + "`/gambalist`" + ` shows your bets, ` + "`/gambaleaderboard`" + ` the top 20 by total winnings.

Good luck! 🍀`
