package entity

import "time"

type CheckIn struct {
	Wallet string `gorm:"primarykey"`

	// LastCheckinDate is an UTC calendar date formatted as YYYY-MM-DD.
	LastCheckinDate string
	Streak          int
	UpdatedAt       time.Time
}
