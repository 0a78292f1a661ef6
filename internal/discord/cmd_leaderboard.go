package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gambaleaderboard",
		Description: "View the season standings",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		result, err := client.GetLeaderboard()
		if err != nil {
			slog.Error("Failed to get leaderboard", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		if len(result.Entries) == 0 {
			embed := createEmbed("🏆 Leaderboard", "Nobody has placed a bet yet. Be the first with `/bet`!", 0x95a5a6, "")
			sendEmbed(s, i, embed)
			return
		}

		var sb strings.Builder
		for idx, entry := range result.Entries {
			fmt.Fprintf(&sb, "%s <@%s> - **%s** (best: %s, pending: %d)\n",
				rankMedal(idx+1), entry.DiscordID,
				formatCents(entry.TotalCents),
				formatCents(entry.BiggestWinCents),
				entry.PendingCount)
		}
		fmt.Fprintf(&sb, "\n%d players in the %d season", result.TotalPlayers, result.Year)

		embed := createEmbed(fmt.Sprintf("🏆 %d Leaderboard", result.Year), sb.String(), 0x1abc9c, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// rankMedal gives the top three their medals, everyone else a number
func rankMedal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("`#%d`", rank)
	}
}
