package models

import "time"

type Side string

const (
	SideA Side = "sideA"
	SideB Side = "sideB"
)

func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

type BetStatus string

const (
	BetStatusOpen    BetStatus = "open"
	BetStatusSettled BetStatus = "settled"
)

type BetOutcome string

const (
	BetOutcomeUnset BetOutcome = ""
	BetOutcomeSideA BetOutcome = "sideA"
	BetOutcomeSideB BetOutcome = "sideB"
	BetOutcomeVoid  BetOutcome = "void"
)

// Settles reports whether o can be declared as the result of a bet.
func (o BetOutcome) Settles() bool {
	return o == BetOutcomeSideA || o == BetOutcomeSideB || o == BetOutcomeVoid
}

// Wins reports whether a wager placed on side wins under o.
func (o BetOutcome) Wins(side Side) bool {
	return (o == BetOutcomeSideA && side == SideA) || (o == BetOutcomeSideB && side == SideB)
}

const (
	DefaultMinStake int64 = 1
	DefaultMaxStake int64 = 1000000
)

type Bet struct {
	ID          string     `gorm:"primaryKey; size:36"`
	SideATeamID string     `gorm:"size:36; not null; index"`
	SideATeam   Team       `gorm:"foreignKey:SideATeamID"`
	SideBTeamID string     `gorm:"size:36; not null; index"`
	SideBTeam   Team       `gorm:"foreignKey:SideBTeamID"`
	OddsA       float64    `gorm:"not null"`
	OddsB       float64    `gorm:"not null"`
	Status      BetStatus  `gorm:"size:16; not null; index"`
	Outcome     BetOutcome `gorm:"size:16; not null"`
	MinStake    int64      `gorm:"not null; default:1"`
	MaxStake    int64      `gorm:"not null; default:1000000"`
	WagerCount  int        `gorm:"not null; default:0"`
	LockAt      *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	SettledAt   *time.Time
}

func (b Bet) OddsFor(side Side) float64 {
	if side == SideA {
		return b.OddsA
	}
	return b.OddsB
}

func (b Bet) TeamFor(side Side) Team {
	if side == SideA {
		return b.SideATeam
	}
	return b.SideBTeam
}

// LockedAt reports whether betting has closed on b at the given time.
func (b Bet) LockedAt(now time.Time) bool {
	return b.LockAt != nil && !now.Before(*b.LockAt)
}
