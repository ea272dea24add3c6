package ledgerService

import (
	"time"

	"github.com/shopspring/decimal"
	"wagerLedgerBot/models"
)

// SettlementReport summarises one settlement.
type SettlementReport struct {
	BetID     string
	Outcome   models.BetOutcome
	SettledAt time.Time
	Wins      int
	Losses    int
	Voids     int
	TotalPaid int64
	Payouts   []WagerPayout
}

type WagerPayout struct {
	WagerID  string
	BettorID string
	Side     models.Side
	Stake    int64
	Payout   int64
	Outcome  models.WagerOutcome
}

// CalculatePayout is floor(stake * odds), computed in decimal so odds such
// as 1.15 pay 115 on 100 rather than 114.
func CalculatePayout(stake int64, odds float64) int64 {
	return decimal.NewFromInt(stake).Mul(decimal.NewFromFloat(odds)).Floor().IntPart()
}

// resolveWager decides what a single wager earns under outcome.
func resolveWager(w models.Wager, outcome models.BetOutcome) (models.WagerOutcome, int64) {
	switch {
	case outcome == models.BetOutcomeVoid:
		return models.WagerVoid, w.Stake
	case outcome.Wins(w.Side):
		return models.WagerWin, CalculatePayout(w.Stake, w.OddsAtPlacement)
	default:
		return models.WagerLose, 0
	}
}

type settlementEngine struct {
	bets    betStore
	wagers  wagerBook
	bettors bettorRegistry
}

// settle must run inside a transaction. The bet is closed before its wagers
// are read: the conditional update holds the bet row, so no placement can
// commit a wager between enumeration and the status flip. Wagers are read
// with a locking read, which sees placements that committed while close
// waited on the bet row.
func (e settlementEngine) settle(betID string, outcome models.BetOutcome, now time.Time) (*SettlementReport, error) {
	const op = "settle"

	if !outcome.Settles() {
		return nil, invalidArgument(op, "outcome must be sideA, sideB or void")
	}

	bet, err := e.bets.get(betID)
	if err != nil {
		return nil, err
	}
	if bet.Status != models.BetStatusOpen {
		return nil, alreadySettled(op, bet.ID)
	}

	if err := e.bets.close(bet.ID, outcome, now); err != nil {
		return nil, err
	}

	wagers, err := e.wagers.forBet(bet.ID)
	if err != nil {
		return nil, err
	}

	report := &SettlementReport{
		BetID:     bet.ID,
		Outcome:   outcome,
		SettledAt: now,
		Payouts:   make([]WagerPayout, 0, len(wagers)),
	}

	for _, w := range wagers {
		result, payout := resolveWager(w, outcome)

		if err := e.wagers.recordResult(w.ID, result, payout); err != nil {
			return nil, err
		}

		won := result == models.WagerWin
		if payout > 0 || won {
			if err := e.bettors.adjustBalance(w.BettorID, payout, won); err != nil {
				return nil, err
			}
		}

		switch result {
		case models.WagerWin:
			report.Wins++
		case models.WagerLose:
			report.Losses++
		case models.WagerVoid:
			report.Voids++
		}
		report.TotalPaid += payout
		report.Payouts = append(report.Payouts, WagerPayout{
			WagerID:  w.ID,
			BettorID: w.BettorID,
			Side:     w.Side,
			Stake:    w.Stake,
			Payout:   payout,
			Outcome:  result,
		})
	}

	return report, nil
}
