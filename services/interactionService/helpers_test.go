package interactionService

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap/zaptest"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/ledgerService"
	"wagerLedgerBot/storage/storagetest"
)

func newTestApp(t *testing.T) *common.App {
	t.Helper()

	db := storagetest.NewDB(t)
	log := zaptest.NewLogger(t)
	return &common.App{
		Ledger:          ledgerService.New(db, log),
		Log:             log,
		DB:              db,
		LeaderboardSize: 10,
	}
}

func testMember(userID string, admin bool) *discordgo.Member {
	m := &discordgo.Member{
		User:        &discordgo.User{ID: userID, Username: "user-" + userID},
		Permissions: discordgo.PermissionSendMessages,
	}
	if admin {
		m.Permissions |= discordgo.PermissionAdministrator
	}
	return m
}

func command(name, userID string, admin bool, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: "guild",
		Member:  testMember(userID, admin),
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: opts,
		},
	}}
}

func component(customID, userID string, admin bool) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionMessageComponent,
		GuildID: "guild",
		Member:  testMember(userID, admin),
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID},
	}}
}

func modal(customID, userID string, admin bool, inputID, value string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionModalSubmit,
		GuildID: "guild",
		Member:  testMember(userID, admin),
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: customID,
			Components: []discordgo.MessageComponent{
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: inputID, Value: value},
				}},
			},
		},
	}}
}

func strOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func intOpt(name string, value int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func numOpt(name string, value float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionNumber, Value: value}
}

func userOpt(name, userID string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionUser, Value: userID}
}

// seedBet registers two teams and opens a bet through the create-bet command.
func seedBet(t *testing.T, app *common.App, opts ...*discordgo.ApplicationCommandInteractionDataOption) string {
	t.Helper()

	for _, name := range []string{"Vitality", "Fnatic"} {
		if _, err := app.Ledger.CreateTeam(name, ""); err != nil {
			t.Fatalf("Failed to create team: %v", err)
		}
	}

	args := append([]*discordgo.ApplicationCommandInteractionDataOption{
		strOpt("team-a", "vitality"),
		strOpt("team-b", "FNATIC"),
		numOpt("odds-a", 1.15),
		numOpt("odds-b", 3),
	}, opts...)

	resp, err := CreateBet(nil, command("create-bet", "admin", true, args...), app)
	if err != nil {
		t.Fatalf("Failed to create bet: %v", err)
	}
	if len(resp.Data.Embeds) != 1 {
		t.Fatalf("Expected a bet announcement, got %+v", resp.Data)
	}

	open, err := app.Ledger.ListOpenBets()
	if err != nil || len(open) == 0 {
		t.Fatalf("Expected an open bet, got %v", err)
	}
	return open[0].ID
}

func responseText(resp *discordgo.InteractionResponse) string {
	if resp == nil || resp.Data == nil {
		return ""
	}
	return resp.Data.Content
}
