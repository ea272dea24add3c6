package interactionService

import (
	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/ledgerService"
	"wagerLedgerBot/services/messageService"
)

func SettleBet(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	if !common.IsAdmin(s, i) {
		return unauthorized(), nil
	}

	opts := optionsOf(i)
	betID, _ := opts.str("bet-id")
	value, _ := opts.str("outcome")

	outcome, err := common.ParseOutcome(value)
	if err != nil {
		return nil, err
	}
	return settle(app, betID, outcome)
}

func OpenSettleModal(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	if !common.IsAdmin(s, i) {
		return unauthorized(), nil
	}

	betID, err := messageService.ParseSettleButton(i.MessageComponentData().CustomID)
	if err != nil {
		return nil, err
	}
	bet, err := app.Ledger.GetBet(betID)
	if err != nil {
		return nil, err
	}
	if bet.Status != models.BetStatusOpen {
		return ephemeral("This bet has already been settled."), nil
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: messageService.BuildSettleModal(bet),
	}, nil
}

func ConfirmSettle(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	if !common.IsAdmin(s, i) {
		return unauthorized(), nil
	}

	data := i.ModalSubmitData()
	betID, err := messageService.ParseSettleConfirm(data.CustomID)
	if err != nil {
		return nil, err
	}
	value, _ := messageService.TextInputValue(data, messageService.OutcomeInputID)
	outcome, err := common.ParseOutcome(value)
	if err != nil {
		return nil, err
	}
	return settle(app, betID, outcome)
}

func settle(app *common.App, betID string, outcome models.BetOutcome) (*discordgo.InteractionResponse, error) {
	report, err := common.WithRetry(func() (*ledgerService.SettlementReport, error) {
		return app.Ledger.Settle(betID, outcome)
	})
	if err != nil {
		return nil, err
	}

	bet, err := app.Ledger.GetBet(report.BetID)
	if err != nil {
		return nil, err
	}
	return embedResponse(messageService.BuildSettlementEmbed(bet, report), nil, 0), nil
}
