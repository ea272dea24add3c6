package models

import "time"

type WagerOutcome string

const (
	WagerPending WagerOutcome = "pending"
	WagerWin     WagerOutcome = "win"
	WagerLose    WagerOutcome = "lose"
	WagerVoid    WagerOutcome = "void"
)

// Wager is one bettor's single position on one side of one Bet. Payout stays
// nil and Outcome pending until the owning bet is settled.
type Wager struct {
	ID              string       `gorm:"primaryKey; size:36"`
	BetID           string       `gorm:"size:36; not null; uniqueIndex:uq_wagers_bet_bettor"`
	Bet             Bet          `gorm:"foreignKey:BetID; constraint:OnDelete:CASCADE"`
	BettorID        string       `gorm:"size:64; not null; uniqueIndex:uq_wagers_bet_bettor; index"`
	Bettor          Bettor       `gorm:"foreignKey:BettorID"`
	Side            Side         `gorm:"size:16; not null"`
	Stake           int64        `gorm:"not null"`
	OddsAtPlacement float64      `gorm:"not null"`
	PlacedAt        time.Time    `gorm:"index"`
	Payout          *int64
	Outcome         WagerOutcome `gorm:"size:16; not null"`
}
