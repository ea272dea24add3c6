package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

type Team struct {
	ID        string  `gorm:"primaryKey; size:36"`
	Name      string  `gorm:"size:100; not null"`
	NameKey   string  `gorm:"uniqueIndex; size:100; not null"`
	LogoRef   *string `gorm:"size:512"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeamKey is the case-folded form of a team name. Two names are the same
// team when their keys match.
func TeamKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
