package services

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/interactionService"
)

// InteractionHandler routes every interaction to its handler.
func InteractionHandler(app *common.App) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			HandleSlashCommand(s, i, app)
		case discordgo.InteractionMessageComponent:
			interactionService.HandleComponentInteraction(s, i, app)
		case discordgo.InteractionModalSubmit:
			interactionService.HandleModalSubmit(s, i, app)
		}
	}
}

// MessageHandler answers "ping" with "pong" so members can check the bot
// is alive.
func MessageHandler(app *common.App) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot || !isPing(m.Content) {
			return
		}
		if _, err := s.ChannelMessageSendReply(m.ChannelID, "pong", m.Reference()); err != nil {
			app.Log.Sugar().Warnf("could not answer ping in %s: %v", m.ChannelID, err)
		}
	}
}

func isPing(content string) bool {
	return strings.EqualFold(strings.TrimSpace(content), "ping")
}
