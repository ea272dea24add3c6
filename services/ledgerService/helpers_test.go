package ledgerService

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	"wagerLedgerBot/models"
	"wagerLedgerBot/storage/storagetest"
)

var testEpoch = time.Date(2025, time.March, 1, 18, 0, 0, 0, time.UTC)

// newTestLedger returns a ledger on a fresh sqlite database whose clock
// advances one second per reading.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	l := New(storagetest.NewDB(t), zaptest.NewLogger(t))

	var mu sync.Mutex
	clock := testEpoch
	l.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clock = clock.Add(time.Second)
		return clock
	}
	return l
}

// newTestBet registers two teams and opens a bet between them.
func newTestBet(t *testing.T, l *Ledger, teamA, teamB string, oddsA, oddsB float64, opts ...BetOption) *models.Bet {
	t.Helper()

	for _, name := range []string{teamA, teamB} {
		if _, err := l.CreateTeam(name, ""); err != nil {
			t.Fatalf("Failed to create team %s: %v", name, err)
		}
	}
	bet, err := l.CreateBet(teamA, teamB, oddsA, oddsB, opts...)
	if err != nil {
		t.Fatalf("Failed to create bet: %v", err)
	}
	return bet
}

func mustPlace(t *testing.T, l *Ledger, betID, bettorID string, side models.Side, stake int64) *models.Wager {
	t.Helper()

	wager, err := l.PlaceWager(betID, bettorID, side, stake)
	if err != nil {
		t.Fatalf("Failed to place wager for %s: %v", bettorID, err)
	}
	return wager
}

func balanceOf(t *testing.T, l *Ledger, bettorID string) int64 {
	t.Helper()

	bettor, err := l.GetBettor(bettorID)
	if err != nil {
		t.Fatalf("Failed to load bettor %s: %v", bettorID, err)
	}
	return bettor.Balance
}

func expectKind(t *testing.T, err error, kind Kind) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected %s error, got nil", kind)
	}
	if KindOf(err) != kind {
		t.Fatalf("Expected %s error, got %s: %v", kind, KindOf(err), err)
	}
}
