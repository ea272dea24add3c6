package interactionService

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/messageService"
)

func PlaceWager(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	opts := optionsOf(i)
	betID, _ := opts.str("bet-id")
	sideValue, _ := opts.str("side")
	stake, _ := opts.integer("amount")

	side, err := common.ParseSide(sideValue)
	if err != nil {
		return nil, err
	}
	return placeWager(app, betID, common.UserID(i), side, stake)
}

// OpenWagerModal answers a wager button with the stake form.
func OpenWagerModal(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	betID, side, err := messageService.ParseWagerButton(i.MessageComponentData().CustomID)
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
	if bet.LockedAt(time.Now()) {
		return ephemeral("Betting on this bet is closed."), nil
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: messageService.BuildWagerModal(bet, side),
	}, nil
}

func SubmitWager(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	data := i.ModalSubmitData()
	betID, side, err := messageService.ParseSubmitWager(data.CustomID)
	if err != nil {
		return nil, err
	}

	value, _ := messageService.StakeInput(data)
	stake, err := common.ParseStake(value)
	if err != nil {
		return nil, err
	}
	return placeWager(app, betID, common.UserID(i), side, stake)
}

func placeWager(app *common.App, betID, bettorID string, side models.Side, stake int64) (*discordgo.InteractionResponse, error) {
	wager, err := common.WithRetry(func() (*models.Wager, error) {
		return app.Ledger.PlaceWager(betID, bettorID, side, stake)
	})
	if err != nil {
		return nil, err
	}

	bet, err := app.Ledger.GetBet(wager.BetID)
	if err != nil {
		return nil, err
	}
	team := bet.TeamFor(wager.Side)

	return ephemeral(fmt.Sprintf("Successfully placed a wager of **%d** points on **%s** at %s.",
		wager.Stake, team.Name, common.FormatOdds(wager.OddsAtPlacement))), nil
}
