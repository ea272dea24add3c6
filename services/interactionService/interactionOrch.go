package interactionService

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/messageService"
)

// Handler builds the response to one interaction.
type Handler func(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error)

// Run answers i with whatever h builds, or with an error message when h
// fails. It reports whether the response went out.
func Run(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App, h Handler) bool {
	resp, err := h(s, i, app)
	if err == nil {
		err = s.InteractionRespond(i.Interaction, resp)
	}
	if err != nil {
		common.SendError(s, i, err, app)
		return false
	}
	return true
}

func HandleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) {
	customID := i.MessageComponentData().CustomID

	switch {
	case messageService.IsWagerButton(customID):
		Run(s, i, app, OpenWagerModal)
	case messageService.IsSettleButton(customID):
		Run(s, i, app, OpenSettleModal)
	case messageService.IsBetListButton(customID):
		Run(s, i, app, BetListPage)
	default:
		app.Log.Warn("unhandled component", zap.String("custom_id", customID))
	}
}

func HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) {
	customID := i.ModalSubmitData().CustomID

	switch {
	case messageService.IsSubmitWager(customID):
		Run(s, i, app, SubmitWager)
	case messageService.IsSettleConfirm(customID):
		if Run(s, i, app, ConfirmSettle) {
			clearButtons(s, i, app)
		}
	default:
		app.Log.Warn("unhandled modal", zap.String("custom_id", customID))
	}
}

// clearButtons strips the components off the message a settled bet was
// announced in.
func clearButtons(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) {
	if i.Message == nil {
		return
	}
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         i.Message.ID,
		Channel:    i.ChannelID,
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		app.Log.Warn("could not remove buttons", zap.String("message_id", i.Message.ID), zap.Error(err))
	}
}

func ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

func unauthorized() *discordgo.InteractionResponse {
	return ephemeral("You are not authorized to use this command.")
}

func embedResponse(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent, flags discordgo.MessageFlags) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      flags,
		},
	}
}
