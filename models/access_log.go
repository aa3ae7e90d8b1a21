package models

import "time"

// AccessLog records login/logout events for the admin audit trail.
type AccessLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UserID    uint      `gorm:"index;not null"`
	Email     string    `gorm:"size:255"`
	Action    string    `gorm:"size:32;not null"` // login | logout
}
