package interactionService

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/ledgerService"
	"wagerLedgerBot/services/messageService"
)

func CreateBet(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	if !common.IsAdmin(s, i) {
		return unauthorized(), nil
	}

	opts := optionsOf(i)
	teamA, _ := opts.str("team-a")
	teamB, _ := opts.str("team-b")
	oddsA, _ := opts.number("odds-a")
	oddsB, _ := opts.number("odds-b")

	var betOpts []ledgerService.BetOption
	minStake, hasMin := opts.integer("min-stake")
	maxStake, hasMax := opts.integer("max-stake")
	if hasMin || hasMax {
		if !hasMin {
			minStake = models.DefaultMinStake
		}
		if !hasMax {
			maxStake = models.DefaultMaxStake
		}
		betOpts = append(betOpts, ledgerService.WithStakeLimits(minStake, maxStake))
	}
	if minutes, ok := opts.integer("closes-in"); ok {
		if minutes <= 0 {
			return nil, common.Invalid("closes-in must be a positive number of minutes.")
		}
		betOpts = append(betOpts, ledgerService.WithLockAt(time.Now().Add(time.Duration(minutes)*time.Minute)))
	}

	bet, err := common.WithRetry(func() (*models.Bet, error) {
		return app.Ledger.CreateBet(teamA, teamB, oddsA, oddsB, betOpts...)
	})
	if err != nil {
		return nil, err
	}

	return embedResponse(messageService.BuildBetEmbed(bet), messageService.GetWagerButtons(bet, true), 0), nil
}

func ListBets(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	bets, err := app.Ledger.ListOpenBets()
	if err != nil {
		return nil, err
	}

	pages := messageService.PageCount(len(bets))
	var components []discordgo.MessageComponent
	if pages > 1 {
		components = messageService.GetBetListButtons(0, pages, common.UserID(i))
	}
	return embedResponse(messageService.BuildBetListEmbed(bets, 0), components, 0), nil
}

// BetListPage re-reads the open bets and redraws the list on the page the
// clicked button points to. Only the member who listed the bets may page.
func BetListPage(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	action, page, owner, err := messageService.ParseBetListButton(i.MessageComponentData().CustomID)
	if err != nil {
		return nil, err
	}
	if owner != common.UserID(i) {
		return ephemeral("Only the member who ran /list-bets can turn its pages."), nil
	}

	bets, err := app.Ledger.ListOpenBets()
	if err != nil {
		return nil, err
	}

	pages := messageService.PageCount(len(bets))
	page = messageService.TargetPage(action, page, pages)

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{messageService.BuildBetListEmbed(bets, page)},
			Components: messageService.GetBetListButtons(page, pages, owner),
		},
	}, nil
}
