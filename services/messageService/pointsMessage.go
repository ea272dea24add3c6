package messageService

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/ledgerService"
)

const historyLimit = 15

func BuildLeaderboardEmbed(bettors []models.Bettor) *discordgo.MessageEmbed {
	var board strings.Builder
	for rank, b := range bettors {
		medal := fmt.Sprintf("%d.", rank+1)
		switch rank {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		}
		fmt.Fprintf(&board, "%s %s **%d** pts (%d/%d won)\n", medal, common.Mention(b.ID), b.Balance, b.Wins, b.TotalWagers)
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard",
		Description: orNone(board.String(), "_Nobody has any points yet._"),
		Color:       0xF1C40F,
	}
}

func wagerLine(w models.Wager) string {
	team := w.Bet.TeamFor(w.Side)
	line := fmt.Sprintf("%s vs %s: **%d** on %s @ %s", w.Bet.SideATeam.Name, w.Bet.SideBTeam.Name, w.Stake, team.Name, common.FormatOdds(w.OddsAtPlacement))

	switch w.Outcome {
	case models.WagerWin:
		var payout int64
		if w.Payout != nil {
			payout = *w.Payout
		}
		return fmt.Sprintf("✅ %s, won %d", line, payout)
	case models.WagerLose:
		return fmt.Sprintf("❌ %s, lost", line)
	case models.WagerVoid:
		return fmt.Sprintf("↩️ %s, refunded", line)
	}
	return fmt.Sprintf("⏳ %s", line)
}

func BuildHistoryEmbed(username string, wagers []models.Wager) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📜 Wager history for %s", username),
		Color: 0x9B59B6,
	}
	if len(wagers) == 0 {
		embed.Description = "_No wagers yet._"
		return embed
	}

	shown := wagers
	if len(shown) > historyLimit {
		shown = shown[:historyLimit]
	}
	lines := make([]string, 0, len(shown)+1)
	for _, w := range shown {
		lines = append(lines, wagerLine(w))
	}
	if extra := len(wagers) - len(shown); extra > 0 {
		lines = append(lines, fmt.Sprintf("_…and %d older wagers_", extra))
	}
	embed.Description = strings.Join(lines, "\n")
	return embed
}

func BuildTeamEmbed(stats *ledgerService.TeamStats) *discordgo.MessageEmbed {
	played := stats.Wins + stats.Losses + stats.Voids
	embed := &discordgo.MessageEmbed{
		Title: stats.Team.Name,
		Color: 0x3498db,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wins", Value: fmt.Sprintf("%d", stats.Wins), Inline: true},
			{Name: "Losses", Value: fmt.Sprintf("%d", stats.Losses), Inline: true},
			{Name: "Cancelled", Value: fmt.Sprintf("%d", stats.Voids), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d settled bets", played)},
	}
	if stats.Team.LogoRef != nil {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: *stats.Team.LogoRef}
	}
	return embed
}
