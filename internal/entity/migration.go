package entity

import "time"

type Migration struct {
	Version   int `gorm:"primarykey;autoIncrement:false"`
	CreatedAt time.Time
}
