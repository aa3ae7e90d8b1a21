package models

import "time"

// Category is a global expense/income label referenced by transactions.
// Categories are seeded at startup and never owned by a single user.
type Category struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"size:128;uniqueIndex;not null"`
	Icon      string `gorm:"size:16"`
	Color     string `gorm:"size:16"`
}
