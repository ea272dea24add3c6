package messageService

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/services/common"
	"wagerLedgerBot/services/ledgerService"
)

const BetsPerPage = 10

// PageCount is the number of pages needed for total bets; an empty list
// still renders one page.
func PageCount(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + BetsPerPage - 1) / BetsPerPage
}

// TargetPage resolves a pagination action taken from page.
func TargetPage(action string, page, pages int) int {
	switch action {
	case PageFirst:
		page = 0
	case PagePrev:
		page--
	case PageNext:
		page++
	case PageLast:
		page = pages - 1
	}
	if page < 0 {
		return 0
	}
	if page > pages-1 {
		return pages - 1
	}
	return page
}

func BuildBetListEmbed(bets []ledgerService.OpenBet, page int) *discordgo.MessageEmbed {
	pages := PageCount(len(bets))
	page = TargetPage("", page, pages)

	embed := &discordgo.MessageEmbed{
		Title:  "📋 Open Bets",
		Color:  0x3498db,
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Page %d/%d • %d open", page+1, pages, len(bets))},
	}

	if len(bets) == 0 {
		embed.Description = "_No open bets right now._"
		return embed
	}

	start := page * BetsPerPage
	end := start + BetsPerPage
	if end > len(bets) {
		end = len(bets)
	}

	for _, bet := range bets[start:end] {
		var value strings.Builder
		fmt.Fprintf(&value, "🅰️ %s @ **%s** (%d pts staked)\n", bet.SideATeam.Name, common.FormatOdds(bet.OddsA), bet.StakeA)
		fmt.Fprintf(&value, "🅱️ %s @ **%s** (%d pts staked)\n", bet.SideBTeam.Name, common.FormatOdds(bet.OddsB), bet.StakeB)
		if bet.LockAt != nil {
			fmt.Fprintf(&value, "Closes <t:%d:R>\n", bet.LockAt.Unix())
		}
		fmt.Fprintf(&value, "ID: `%s`", bet.ID)

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s vs %s", bet.SideATeam.Name, bet.SideBTeam.Name),
			Value: value.String(),
		})
	}
	return embed
}

// GetBetListButtons returns first/prev/next/last buttons for page, disabled
// where they would not move.
func GetBetListButtons(page, pages int, userID string) []discordgo.MessageComponent {
	atStart := page <= 0
	atEnd := page >= pages-1

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "First",
					Style:    discordgo.SecondaryButton,
					CustomID: BetListButtonID(PageFirst, page, userID),
					Disabled: atStart,
					Emoji:    &discordgo.ComponentEmoji{Name: "⏮️"},
				},
				discordgo.Button{
					Label:    "Previous",
					Style:    discordgo.PrimaryButton,
					CustomID: BetListButtonID(PagePrev, page, userID),
					Disabled: atStart,
					Emoji:    &discordgo.ComponentEmoji{Name: "◀️"},
				},
				discordgo.Button{
					Label:    "Next",
					Style:    discordgo.PrimaryButton,
					CustomID: BetListButtonID(PageNext, page, userID),
					Disabled: atEnd,
					Emoji:    &discordgo.ComponentEmoji{Name: "▶️"},
				},
				discordgo.Button{
					Label:    "Last",
					Style:    discordgo.SecondaryButton,
					CustomID: BetListButtonID(PageLast, page, userID),
					Disabled: atEnd,
					Emoji:    &discordgo.ComponentEmoji{Name: "⏭️"},
				},
			},
		},
	}
}
