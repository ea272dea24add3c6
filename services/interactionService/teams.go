package interactionService

import (
	"fmt"
	"net/url"

	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/messageService"
)

func CreateTeam(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	if !common.IsAdmin(s, i) {
		return unauthorized(), nil
	}

	opts := optionsOf(i)
	name, _ := opts.str("name")
	logo, _ := opts.str("logo")
	if logo != "" && !isWebURL(logo) {
		return nil, common.Invalid("The logo must be an http or https link.")
	}

	team, err := common.WithRetry(func() (*models.Team, error) {
		return app.Ledger.CreateTeam(name, logo)
	})
	if err != nil {
		return nil, err
	}

	return ephemeral(fmt.Sprintf("Team **%s** is registered.", team.Name)), nil
}

func ShowTeam(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) (*discordgo.InteractionResponse, error) {
	name, _ := optionsOf(i).str("name")

	stats, err := app.Ledger.ListTeamStats(name)
	if err != nil {
		return nil, err
	}
	return embedResponse(messageService.BuildTeamEmbed(stats), nil, 0), nil
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
