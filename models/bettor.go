package models

import "time"

// Bettor is keyed by the Discord user id. Rows are provisioned lazily at a
// zero balance the first time a wager or balance change touches them.
type Bettor struct {
	ID          string `gorm:"primaryKey; size:64"`
	Balance     int64  `gorm:"not null; default:0; index"`
	Wins        int    `gorm:"not null; default:0"`
	TotalWagers int    `gorm:"not null; default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
