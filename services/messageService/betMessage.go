package messageService

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/ledgerService"
)

// GetWagerButtons returns the buttons shown under a bet announcement. The
// settle button is only useful to admins; the handler checks again on click.
func GetWagerButtons(bet *models.Bet, withSettle bool) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    fmt.Sprintf("%s (%s)", bet.SideATeam.Name, common.FormatOdds(bet.OddsA)),
			Style:    discordgo.PrimaryButton,
			CustomID: WagerButtonID(bet.ID, models.SideA),
			Emoji:    &discordgo.ComponentEmoji{Name: "🟡"},
		},
		discordgo.Button{
			Label:    fmt.Sprintf("%s (%s)", bet.SideBTeam.Name, common.FormatOdds(bet.OddsB)),
			Style:    discordgo.SuccessButton,
			CustomID: WagerButtonID(bet.ID, models.SideB),
			Emoji:    &discordgo.ComponentEmoji{Name: "🟡"},
		},
	}
	if withSettle {
		buttons = append(buttons, GetSettleButton(bet.ID))
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func GetSettleButton(betID string) discordgo.Button {
	return discordgo.Button{
		Label:    "Settle Bet",
		Style:    discordgo.SecondaryButton,
		CustomID: SettleButtonID(betID),
		Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
	}
}

func BuildBetEmbed(bet *models.Bet) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "📢 New Bet Created",
		Description: fmt.Sprintf("**%s** vs **%s**", bet.SideATeam.Name, bet.SideBTeam.Name),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("🅰️ %s", bet.SideATeam.Name),
				Value:  fmt.Sprintf("Odds: %s", common.FormatOdds(bet.OddsA)),
				Inline: true,
			},
			{
				Name:   fmt.Sprintf("🅱️ %s", bet.SideBTeam.Name),
				Value:  fmt.Sprintf("Odds: %s", common.FormatOdds(bet.OddsB)),
				Inline: true,
			},
			{
				Name:  "Stake",
				Value: fmt.Sprintf("%d to %d points", bet.MinStake, bet.MaxStake),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Bet ID: " + bet.ID},
		Color:  0x3498db,
	}

	if bet.LockAt != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Betting closes",
			Value: fmt.Sprintf("<t:%d:F>", bet.LockAt.Unix()),
		})
	}
	if bet.SideATeam.LogoRef != nil {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: *bet.SideATeam.LogoRef}
	}
	return embed
}

func outcomeLabel(bet *models.Bet, outcome models.BetOutcome) string {
	switch outcome {
	case models.BetOutcomeSideA:
		return fmt.Sprintf("%s won", bet.SideATeam.Name)
	case models.BetOutcomeSideB:
		return fmt.Sprintf("%s won", bet.SideBTeam.Name)
	case models.BetOutcomeVoid:
		return "Bet cancelled, stakes refunded"
	}
	return string(outcome)
}

// BuildSettlementEmbed summarises who was paid what.
func BuildSettlementEmbed(bet *models.Bet, report *ledgerService.SettlementReport) *discordgo.MessageEmbed {
	var winners, losers, refunds strings.Builder
	for _, p := range report.Payouts {
		switch p.Outcome {
		case models.WagerWin:
			fmt.Fprintf(&winners, "%s +**%d** (staked %d)\n", common.Mention(p.BettorID), p.Payout, p.Stake)
		case models.WagerLose:
			fmt.Fprintf(&losers, "%s lost %d\n", common.Mention(p.BettorID), p.Stake)
		case models.WagerVoid:
			fmt.Fprintf(&refunds, "%s refunded %d\n", common.Mention(p.BettorID), p.Payout)
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏁 Bet Settled: %s vs %s", bet.SideATeam.Name, bet.SideBTeam.Name),
		Description: outcomeLabel(bet, report.Outcome),
		Color:       0x57F287,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Total Paid",
				Value:  fmt.Sprintf("**%d** points", report.TotalPaid),
				Inline: true,
			},
			{
				Name:   "Wagers",
				Value:  fmt.Sprintf("%d won • %d lost • %d void", report.Wins, report.Losses, report.Voids),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Bet ID: " + bet.ID},
	}

	if report.Outcome == models.BetOutcomeVoid {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Refunds", Value: orNone(refunds.String(), "_No wagers_")})
		return embed
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Winners", Value: orNone(winners.String(), "_No winners_")},
		&discordgo.MessageEmbedField{Name: "Losers", Value: orNone(losers.String(), "_No losers_")},
	)
	return embed
}

// Embed field values are capped at 1024 characters.
func orNone(value, none string) string {
	if value == "" {
		return none
	}
	if len(value) > 1024 {
		cut := strings.LastIndex(value[:1000], "\n")
		if cut < 0 {
			cut = 1000
		}
		return value[:cut] + "\n…"
	}
	return value
}

// MaxEmbedFields is Discord's limit on fields in one embed.
const MaxEmbedFields = 25

// BuildLockReminderEmbed lists bets that stopped taking wagers and still
// wait for an admin to settle them.
func BuildLockReminderEmbed(bets []models.Bet) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "⏰ Bets waiting to be settled",
		Color: 0xE67E22,
	}
	for _, bet := range bets {
		value := fmt.Sprintf("ID: `%s`", bet.ID)
		if bet.LockAt != nil {
			value = fmt.Sprintf("Closed <t:%d:R> • %s", bet.LockAt.Unix(), value)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s vs %s", bet.SideATeam.Name, bet.SideBTeam.Name),
			Value: value,
		})
		if len(embed.Fields) == MaxEmbedFields {
			break
		}
	}
	return embed
}
