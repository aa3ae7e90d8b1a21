package models

import "time"

// Profile represents a user's profile (one-to-one with User)
type Profile struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
	UserID    uint       `gorm:"uniqueIndex;not null"` // one-to-one relation
	User      User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FullName  string     `gorm:"size:255;not null"`
	Email     string     `gorm:"size:255"` // report recipient; falls back to users.email when empty
}
