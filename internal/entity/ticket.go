package entity

type Ticket struct {
	Base

	DrawID  string `gorm:"index"`
	Wallet  string `gorm:"index"`
	BatchID string `gorm:"index"`

	Numbers  Array[int]
	Moonball int
}
