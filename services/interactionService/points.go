package interactionService

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/messageService"
)

func MyPoints(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	bettor, err := app.Ledger.GetBettor(common.UserID(i))
	if err != nil {
		return nil, err
	}
	return ephemeral(fmt.Sprintf("You have **%d** points. You won %d of your %d wagers.", bettor.Balance, bettor.Wins, bettor.TotalWagers)), nil
}

func GivePoints(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	if !common.IsAdmin(s, i) {
		return unauthorized(), nil
	}

	opts := optionsOf(i)
	target, ok := opts.user(i, "user")
	if !ok {
		return nil, common.Invalid("Pick a member to give points to.")
	}
	amount, _ := opts.integer("amount")
	if amount == 0 {
		return nil, common.Invalid("Please enter an amount other than zero.")
	}

	bettor, err := common.WithRetry(func() (*models.Bettor, error) {
		return app.Ledger.GrantPoints(target.ID, amount)
	})
	if err != nil {
		return nil, err
	}

	mention := common.Mention(bettor.ID)
	content := fmt.Sprintf("Successfully gave **%d** points to %s.", amount, mention)
	if amount < 0 {
		content = fmt.Sprintf("Successfully took **%d** points from %s.", -amount, mention)
	}
	content += fmt.Sprintf(" New balance: **%d**.", bettor.Balance)

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}, nil
}

func ShowLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	bettors, err := app.Ledger.GetLeaderboard(app.LeaderboardSize)
	if err != nil {
		return nil, err
	}
	return embedResponse(messageService.BuildLeaderboardEmbed(bettors), nil, 0), nil
}

func MyHistory(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	wagers, err := app.Ledger.GetUserHistory(common.UserID(i))
	if err != nil {
		return nil, err
	}

	username := "you"
	if i.Member != nil {
		username = common.GetUsernameFromUser(i.Member.User)
	} else if i.User != nil {
		username = common.GetUsernameFromUser(i.User)
	}
	return embedResponse(messageService.BuildHistoryEmbed(username, wagers), nil, discordgo.MessageFlagsEphemeral), nil
}
