package messageService

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/models"
)

const StakeInputID = "stake"

// BuildWagerModal asks for the stake of a wager on side of bet.
func BuildWagerModal(bet *models.Bet, side models.Side) *discordgo.InteractionResponseData {
	team := bet.TeamFor(side)
	title := truncate(fmt.Sprintf("Wager on %s", team.Name), 45)

	return &discordgo.InteractionResponseData{
		Title:    title,
		CustomID: SubmitWagerID(bet.ID, side),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    StakeInputID,
						Label:       fmt.Sprintf("Points to stake (odds %.2f)", bet.OddsFor(side)),
						Style:       discordgo.TextInputShort,
						Placeholder: fmt.Sprintf("%d to %d", bet.MinStake, bet.MaxStake),
						Required:    true,
						MaxLength:   12,
					},
				},
			},
		},
	}
}

// StakeInput pulls the stake field out of a submitted wager modal.
func StakeInput(data discordgo.ModalSubmitInteractionData) (string, bool) {
	return TextInputValue(data, StakeInputID)
}

const OutcomeInputID = "outcome"

func BuildSettleModal(bet *models.Bet) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Title:    "Settle Bet",
		CustomID: SettleConfirmID(bet.ID),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    OutcomeInputID,
						Label:       truncate(fmt.Sprintf("A = %s, B = %s, or void", bet.SideATeam.Name, bet.SideBTeam.Name), 45),
						Style:       discordgo.TextInputShort,
						Placeholder: "A, B or void",
						Required:    true,
						MaxLength:   10,
					},
				},
			},
		},
	}
}

// TextInputValue returns the value of the text input id in a submitted form.
func TextInputValue(data discordgo.ModalSubmitInteractionData, id string) (string, bool) {
	for _, row := range data.Components {
		actions, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actions.Components {
			input, ok := component.(*discordgo.TextInput)
			if ok && input.CustomID == id {
				return input.Value, true
			}
		}
	}
	return "", false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
