package models

import "time"

type ErrorLog struct {
	ID        uint   `gorm:"primaryKey"`
	GuildID   string `gorm:"size:64"`
	Command   string `gorm:"size:64"`
	Kind      string `gorm:"size:32"`
	Message   string
	CreatedAt time.Time
}
