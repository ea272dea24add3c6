package messageService

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"wagerLedgerBot/models"
	"wagerLedgerBot/services/ledgerService"
)

const testBetID = "3f2b8c1e-0d4a-4c55-9a8e-1b2c3d4e5f60"

func testBet() *models.Bet {
	return &models.Bet{
		ID:        testBetID,
		SideATeam: models.Team{Name: "Vitality"},
		SideBTeam: models.Team{Name: "Fnatic"},
		OddsA:     1.15,
		OddsB:     3,
		MinStake:  1,
		MaxStake:  500,
	}
}

func TestWagerCustomIDs(t *testing.T) {
	id := WagerButtonID(testBetID, models.SideB)
	if !IsWagerButton(id) || IsSubmitWager(id) {
		t.Fatalf("Unexpected prefix classification for %q", id)
	}

	betID, side, err := ParseWagerButton(id)
	if err != nil || betID != testBetID || side != models.SideB {
		t.Errorf("Round trip failed: %s, %s, %v", betID, side, err)
	}

	submit := SubmitWagerID(testBetID, models.SideA)
	if !IsSubmitWager(submit) {
		t.Fatalf("Expected %q to be a submit id", submit)
	}
	betID, side, err = ParseSubmitWager(submit)
	if err != nil || betID != testBetID || side != models.SideA {
		t.Errorf("Round trip failed: %s, %s, %v", betID, side, err)
	}

	for _, bad := range []string{"wager_", "wager_abc", "wager_abc_sideC", "other_abc_sideA"} {
		if _, _, err := ParseWagerButton(bad); err == nil {
			t.Errorf("Expected an error for %q", bad)
		}
	}
}

func TestBetListCustomIDs(t *testing.T) {
	id := BetListButtonID(PageNext, 2, "123456789")
	if !IsBetListButton(id) {
		t.Fatalf("Expected %q to be a bet list id", id)
	}

	action, page, userID, err := ParseBetListButton(id)
	if err != nil || action != PageNext || page != 2 || userID != "123456789" {
		t.Errorf("Round trip failed: %s, %d, %s, %v", action, page, userID, err)
	}

	for _, bad := range []string{"bets_next_2", "bets_jump_2_u", "bets_next_x_u", "bets_next_-1_u"} {
		if _, _, _, err := ParseBetListButton(bad); err == nil {
			t.Errorf("Expected an error for %q", bad)
		}
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		total int
		pages int
	}{
		{total: 0, pages: 1},
		{total: 1, pages: 1},
		{total: 10, pages: 1},
		{total: 11, pages: 2},
		{total: 35, pages: 4},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total); got != tt.pages {
			t.Errorf("PageCount(%d) = %d, want %d", tt.total, got, tt.pages)
		}
	}

	moves := []struct {
		action string
		page   int
		want   int
	}{
		{action: PageFirst, page: 2, want: 0},
		{action: PagePrev, page: 2, want: 1},
		{action: PagePrev, page: 0, want: 0},
		{action: PageNext, page: 2, want: 3},
		{action: PageNext, page: 3, want: 3},
		{action: PageLast, page: 0, want: 3},
		{action: "", page: 9, want: 3},
	}
	for _, m := range moves {
		if got := TargetPage(m.action, m.page, 4); got != m.want {
			t.Errorf("TargetPage(%q, %d, 4) = %d, want %d", m.action, m.page, got, m.want)
		}
	}
}

func TestBetListEmbed(t *testing.T) {
	bets := make([]ledgerService.OpenBet, 0, 12)
	for n := 0; n < 12; n++ {
		bet := testBet()
		bet.ID = fmt.Sprintf("bet-%02d", n)
		bets = append(bets, ledgerService.OpenBet{Bet: *bet, StakeA: int64(n), StakeB: 5})
	}

	first := BuildBetListEmbed(bets, 0)
	if len(first.Fields) != BetsPerPage {
		t.Errorf("Expected %d fields on page 1, got %d", BetsPerPage, len(first.Fields))
	}
	if first.Footer.Text != "Page 1/2 • 12 open" {
		t.Errorf("Unexpected footer %q", first.Footer.Text)
	}

	second := BuildBetListEmbed(bets, 1)
	if len(second.Fields) != 2 {
		t.Fatalf("Expected 2 fields on page 2, got %d", len(second.Fields))
	}
	if !strings.Contains(second.Fields[1].Value, "bet-11") {
		t.Errorf("Expected the last bet on page 2, got %q", second.Fields[1].Value)
	}

	empty := BuildBetListEmbed(nil, 0)
	if empty.Description == "" || len(empty.Fields) != 0 {
		t.Error("Expected the empty list message")
	}
}

func TestBetListButtons(t *testing.T) {
	row := GetBetListButtons(0, 3, "u1")[0].(discordgo.ActionsRow)
	disabled := make([]bool, 0, 4)
	for _, c := range row.Components {
		disabled = append(disabled, c.(discordgo.Button).Disabled)
	}
	want := []bool{true, true, false, false}
	for n := range want {
		if disabled[n] != want[n] {
			t.Errorf("Button %d disabled = %v, want %v", n, disabled[n], want[n])
		}
	}

	row = GetBetListButtons(2, 3, "u1")[0].(discordgo.ActionsRow)
	if !row.Components[3].(discordgo.Button).Disabled || row.Components[0].(discordgo.Button).Disabled {
		t.Error("Expected only next/last to be disabled on the last page")
	}
}

func TestBuildSettlementEmbed(t *testing.T) {
	report := &ledgerService.SettlementReport{
		BetID:     testBetID,
		Outcome:   models.BetOutcomeSideA,
		Wins:      1,
		Losses:    1,
		TotalPaid: 115,
		Payouts: []ledgerService.WagerPayout{
			{BettorID: "alice", Side: models.SideA, Stake: 100, Payout: 115, Outcome: models.WagerWin},
			{BettorID: "bob", Side: models.SideB, Stake: 50, Payout: 0, Outcome: models.WagerLose},
		},
	}

	embed := BuildSettlementEmbed(testBet(), report)
	if embed.Description != "Vitality won" {
		t.Errorf("Unexpected description %q", embed.Description)
	}

	fields := map[string]string{}
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	if fields["Total Paid"] != "**115** points" {
		t.Errorf("Unexpected total %q", fields["Total Paid"])
	}
	if !strings.Contains(fields["Winners"], "<@alice> +**115**") {
		t.Errorf("Expected alice among winners, got %q", fields["Winners"])
	}
	if !strings.Contains(fields["Losers"], "<@bob> lost 50") {
		t.Errorf("Expected bob among losers, got %q", fields["Losers"])
	}
}

func TestBuildWagerModal(t *testing.T) {
	modal := BuildWagerModal(testBet(), models.SideB)
	if modal.CustomID != SubmitWagerID(testBetID, models.SideB) {
		t.Errorf("Unexpected modal id %q", modal.CustomID)
	}
	if modal.Title != "Wager on Fnatic" {
		t.Errorf("Unexpected title %q", modal.Title)
	}

	submitted := discordgo.ModalSubmitInteractionData{
		CustomID: modal.CustomID,
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: StakeInputID, Value: "250"},
			}},
		},
	}
	value, ok := StakeInput(submitted)
	if !ok || value != "250" {
		t.Errorf("Expected stake 250, got %q, %v", value, ok)
	}

	if _, ok := StakeInput(discordgo.ModalSubmitInteractionData{}); ok {
		t.Error("Expected no stake in an empty form")
	}
}

func TestBuildHistoryEmbed(t *testing.T) {
	payout := int64(200)
	wagers := []models.Wager{
		{Bet: *testBet(), Side: models.SideA, Stake: 100, OddsAtPlacement: 2, Outcome: models.WagerWin, Payout: &payout},
		{Bet: *testBet(), Side: models.SideB, Stake: 20, OddsAtPlacement: 3, Outcome: models.WagerPending},
	}

	embed := BuildHistoryEmbed("KC Fan", wagers)
	lines := strings.Split(embed.Description, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "✅") || !strings.HasSuffix(lines[0], "won 200") {
		t.Errorf("Unexpected win line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "⏳") || !strings.Contains(lines[1], "on Fnatic") {
		t.Errorf("Unexpected pending line %q", lines[1])
	}
}

func TestSettleCustomIDs(t *testing.T) {
	button := SettleButtonID(testBetID)
	if !IsSettleButton(button) || IsSettleConfirm(button) {
		t.Fatalf("Unexpected prefix classification for %q", button)
	}
	if betID, err := ParseSettleButton(button); err != nil || betID != testBetID {
		t.Errorf("Round trip failed: %s, %v", betID, err)
	}

	confirm := SettleConfirmID(testBetID)
	if betID, err := ParseSettleConfirm(confirm); err != nil || betID != testBetID {
		t.Errorf("Round trip failed: %s, %v", betID, err)
	}
	if _, err := ParseSettleConfirm("settle_confirm_"); err == nil {
		t.Error("Expected an error for a missing bet id")
	}
}

func TestGetWagerButtons(t *testing.T) {
	row := GetWagerButtons(testBet(), false)[0].(discordgo.ActionsRow)
	if len(row.Components) != 2 {
		t.Fatalf("Expected 2 buttons, got %d", len(row.Components))
	}
	first := row.Components[0].(discordgo.Button)
	if first.Label != "Vitality (1.15)" || first.CustomID != WagerButtonID(testBetID, models.SideA) {
		t.Errorf("Unexpected first button %q / %q", first.Label, first.CustomID)
	}

	row = GetWagerButtons(testBet(), true)[0].(discordgo.ActionsRow)
	if len(row.Components) != 3 || row.Components[2].(discordgo.Button).CustomID != SettleButtonID(testBetID) {
		t.Error("Expected a trailing settle button")
	}
}
