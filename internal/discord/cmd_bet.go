package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// BetCommand returns the bet command definition and handler
func BetCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "bet",
		Description: "Place a bet on a Polymarket market",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "market",
				Description: "Polymarket market link",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "position",
				Description: "Which side to back",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Yes", Value: "yes"},
					{Name: "No", Value: "no"},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		options := getOptions(i)
		if len(options) < 2 {
			respondError(s, i, "Missing required market and position arguments.")
			return
		}

		market := options[0].StringValue()
		position := strings.ToLower(options[1].StringValue())

		result, err := client.PlaceBet(user.ID, market, position)
		if err != nil {
			slog.Error("Failed to place bet", "error", err, "discord_id", user.ID)
			respondFriendlyError(s, i, err)
			return
		}

		bet := result.Bet
		description := fmt.Sprintf(
			"%s **%s** on *%s*\n\nPrice: **%d¢** • Stake: **%s**\nPays **%s** if it hits.\n\nBets left this month: **%d**",
			positionEmoji(bet.Position), strings.ToUpper(bet.Position), bet.MarketTitle,
			bet.PriceCents, formatCents(bet.StakeCents),
			formatCents(result.PotentialPayoutCents),
			result.RemainingBets)

		embed := createEmbed("🎰 Bet Placed", description, 0x3498db, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
