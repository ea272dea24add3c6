package services

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/interactionService"
)

var commandHandlers = map[string]interactionService.Handler{
	"create-team": interactionService.CreateTeam,
	"team":        interactionService.ShowTeam,
	"create-bet":  interactionService.CreateBet,
	"list-bets":   interactionService.ListBets,
	"place-wager": interactionService.PlaceWager,
	"settle-bet":  interactionService.SettleBet,
	"my-history":  interactionService.MyHistory,
	"my-points":   interactionService.MyPoints,
	"give-points": interactionService.GivePoints,
	"leaderboard": interactionService.ShowLeaderboard,
}

func HandleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate, app *common.App) {
	name := i.ApplicationCommandData().Name
	handler, ok := commandHandlers[name]
	if !ok {
		app.Log.Warn("unknown command", zap.String("command", name))
		return
	}
	interactionService.Run(s, i, app, handler)
}

var (
	adminPermission int64 = discordgo.PermissionAdministrator

	sideChoices = []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Side A", Value: "sideA"},
		{Name: "Side B", Value: "sideB"},
	}
	outcomeChoices = []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Side A won", Value: "sideA"},
		{Name: "Side B won", Value: "sideB"},
		{Name: "Cancelled (refund everyone)", Value: "void"},
	}
	minOdds = 0.01
)

func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     "create-team",
			Description:              "🛡 Register a team, or update its logo - ADMIN ONLY",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "name",
					Description: "Team name",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "logo",
					Description: "Link to the team's logo",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    false,
				},
			},
		},
		{
			Name:        "team",
			Description: "Show a team's record",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "name",
					Description: "Team name",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
			},
		},
		{
			Name:                     "create-bet",
			Description:              "🛡 Open a bet between two teams - ADMIN ONLY",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "team-a",
					Description: "First team",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "team-b",
					Description: "Second team",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "odds-a",
					Description: "Decimal odds for the first team (e.g. 1.85)",
					Type:        discordgo.ApplicationCommandOptionNumber,
					Required:    true,
					MinValue:    &minOdds,
				},
				{
					Name:        "odds-b",
					Description: "Decimal odds for the second team (e.g. 2.10)",
					Type:        discordgo.ApplicationCommandOptionNumber,
					Required:    true,
					MinValue:    &minOdds,
				},
				{
					Name:        "min-stake",
					Description: "Smallest wager allowed // *Optional: Default 1",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    false,
				},
				{
					Name:        "max-stake",
					Description: "Largest wager allowed // *Optional: Default 1000000",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    false,
				},
				{
					Name:        "closes-in",
					Description: "Minutes until betting closes // *Optional",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    false,
				},
			},
		},
		{
			Name:        "list-bets",
			Description: "List the bets still taking wagers",
		},
		{
			Name:        "place-wager",
			Description: "Wager points on a bet",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "bet-id",
					Description: "Bet ID (shown under the bet)",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "side",
					Description: "Which team you back",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices:     sideChoices,
				},
				{
					Name:        "amount",
					Description: "Points to stake",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
				},
			},
		},
		{
			Name:                     "settle-bet",
			Description:              "🛡 Declare a bet's outcome and pay out - ADMIN ONLY",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "bet-id",
					Description: "Bet ID",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "outcome",
					Description: "Result",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices:     outcomeChoices,
				},
			},
		},
		{
			Name:        "my-history",
			Description: "Show your wagers, newest first",
		},
		{
			Name:        "my-points",
			Description: "Show your current points",
		},
		{
			Name:                     "give-points",
			Description:              "🛡 Give (or take, with a negative amount) points - ADMIN ONLY",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "user",
					Description: "User to give points to",
					Type:        discordgo.ApplicationCommandOptionUser,
					Required:    true,
				},
				{
					Name:        "amount",
					Description: "Amount of points to give",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Show the top users by points",
		},
	}
}

// RegisterCommands creates every command for guildID, or globally when
// guildID is empty.
func RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return fmt.Errorf("cannot create '%v' command: %v", cmd.Name, err)
		}
	}
	return nil
}
