package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// maxListedBets caps how many bets the list embed renders before truncating
const maxListedBets = 25

// ListBetsCommand returns the bet listing command definition and handler
func ListBetsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gambalist",
		Description: "See your bets and season totals",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		result, err := client.ListBets(user.ID)
		if err != nil {
			slog.Error("Failed to list bets", "error", err, "discord_id", user.ID)
			respondFriendlyError(s, i, err)
			return
		}

		if len(result.Bets) == 0 {
			embed := createEmbed("📋 Your Bets", "No bets yet this season. Place one with `/bet`!", 0x95a5a6, "")
			sendEmbed(s, i, embed)
			return
		}

		var sb strings.Builder
		for idx, bet := range result.Bets {
			if idx == maxListedBets {
				fmt.Fprintf(&sb, "…and %d more\n", len(result.Bets)-maxListedBets)
				break
			}
			fmt.Fprintf(&sb, "%s %s **%s** @ %d¢ (%s)%s\n",
				betStatusEmoji(bet), strings.ToUpper(bet.Position), bet.MarketTitle,
				bet.PriceCents, formatCents(bet.StakeCents), betOutcomeSuffix(bet))
		}

		fmt.Fprintf(&sb, "\n**Winnings:** %s • **Biggest win:** %s\n**Max possible:** %s • **Bets left this month:** %d",
			formatCents(result.TotalCents),
			formatCents(result.BiggestWinCents),
			formatCents(result.TotalCents+result.PendingPotentialCents),
			result.RemainingBets)

		embed := createEmbed("📋 Your Bets", sb.String(), 0x3498db, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// betStatusEmoji marks a bet as pending, won or lost
func betStatusEmoji(bet BetView) string {
	if bet.Outcome == nil {
		return "⏳"
	}
	if *bet.Outcome == "win" {
		return "🏆"
	}
	return "💀"
}

// betOutcomeSuffix renders the payout for settled bets
func betOutcomeSuffix(bet BetView) string {
	if bet.Outcome == nil || bet.PayoutCents == nil {
		return ""
	}
	if *bet.Outcome == "win" {
		return fmt.Sprintf(" → won %s", formatCents(*bet.PayoutCents))
	}
	return " → lost"
}
