package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// RegisterCommand returns the register command definition and handler
func RegisterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "register",
		Description: "Join this year's prediction market game (January only)",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		result, err := client.Register(user.ID)
		if err != nil {
			slog.Error("Failed to register player", "error", err, "discord_id", user.ID)
			respondFriendlyError(s, i, err)
			return
		}

		description := fmt.Sprintf(
			"Welcome to the **%d** season, <@%s>! 🎉\n\nYou have **16 bets** to spend in January, then 1 per month.\nUse `/gambarules` for the full rundown.",
			result.Year, user.ID)

		embed := createEmbed("🎲 Registered", description, 0x2ecc71, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
