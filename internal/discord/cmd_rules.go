package discord

import (
	"github.com/bwmarrin/discordgo"
)

// RulesCommand returns the rules command definition and handler
func RulesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gambarules",
		Description: "How the game works",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		embed := createEmbed("📖 Game Rules", rulesText, 0x9b59b6, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
