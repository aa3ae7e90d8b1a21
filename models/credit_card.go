package models

import "time"

// CreditCard tracks one card's limit and current usage snapshot.
// UsedLimit is not constrained to CreditLimit at write time; scoring must
// degrade gracefully when usage exceeds 100%.
type CreditCard struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint    `gorm:"index;not null"`
	CardName    string  `gorm:"size:128;not null"`
	CardBrand   string  `gorm:"size:64"`
	CreditLimit float64 `gorm:"not null"`
	UsedLimit   float64 `gorm:"not null;default:0"`
	ClosingDay  int     `gorm:"not null"`
	DueDay      int     `gorm:"not null"`
}
