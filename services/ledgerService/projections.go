package ledgerService

import (
	"time"

	"wagerLedgerBot/models"
)

// OpenBet is a bet still taking wagers, with the points staked on each side.
type OpenBet struct {
	models.Bet
	StakeA int64
	StakeB int64
}

type TeamStats struct {
	Team   models.Team
	Wins   int
	Losses int
	Voids  int
}

// ListOpenBets returns open bets, newest first.
func (l *Ledger) ListOpenBets() ([]OpenBet, error) {
	const op = "list open bets"
	c := l.read()

	bets, err := c.bets.listOpen()
	if err != nil {
		return nil, classify(op, err)
	}

	ids := make([]string, 0, len(bets))
	for _, b := range bets {
		ids = append(ids, b.ID)
	}
	totals, err := c.bets.stakeTotals(ids)
	if err != nil {
		return nil, classify(op, err)
	}

	open := make([]OpenBet, 0, len(bets))
	for _, b := range bets {
		open = append(open, OpenBet{
			Bet:    b,
			StakeA: totals[b.ID][models.SideA],
			StakeB: totals[b.ID][models.SideB],
		})
	}
	return open, nil
}

// ListBetsAwaitingSettlement returns open bets whose lock time has passed.
func (l *Ledger) ListBetsAwaitingSettlement(now time.Time) ([]models.Bet, error) {
	bets, err := l.read().bets.listAwaitingSettlement(now.UTC())
	return bets, classify("list bets awaiting settlement", err)
}

// ListTeamStats tallies the settled bets the named team played in.
func (l *Ledger) ListTeamStats(name string) (*TeamStats, error) {
	const op = "team stats"
	c := l.read()

	team, err := c.teams.findByName(name)
	if err != nil {
		return nil, classify(op, err)
	}

	bets, err := c.bets.listSettledForTeam(team.ID)
	if err != nil {
		return nil, classify(op, err)
	}

	stats := &TeamStats{Team: *team}
	for _, b := range bets {
		side := models.SideA
		if b.SideBTeamID == team.ID {
			side = models.SideB
		}
		switch {
		case b.Outcome == models.BetOutcomeVoid:
			stats.Voids++
		case b.Outcome.Wins(side):
			stats.Wins++
		default:
			stats.Losses++
		}
	}
	return stats, nil
}

// GetUserHistory returns every wager bettorID placed, newest first, with the
// bet and both teams loaded.
func (l *Ledger) GetUserHistory(bettorID string) ([]models.Wager, error) {
	var wagers []models.Wager
	err := l.db.
		Preload("Bet.SideATeam").
		Preload("Bet.SideBTeam").
		Where("bettor_id = ?", bettorID).
		Order("placed_at desc").
		Order("id").
		Find(&wagers).Error
	return wagers, classify("user history", err)
}

// GetLeaderboard returns the limit richest bettors.
func (l *Ledger) GetLeaderboard(limit int) ([]models.Bettor, error) {
	if limit <= 0 {
		return nil, invalidArgument("leaderboard", "limit must be positive")
	}

	var bettors []models.Bettor
	err := l.db.
		Order("balance desc").
		Order("wins desc").
		Order("id").
		Limit(limit).
		Find(&bettors).Error
	return bettors, classify("leaderboard", err)
}

// GetBettor returns the stored bettor, or a zero-balance one that has not
// been persisted yet.
func (l *Ledger) GetBettor(id string) (*models.Bettor, error) {
	bettor, _, err := l.read().bettors.find(id)
	return bettor, classify("get bettor", err)
}
