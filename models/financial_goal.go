package models

import "time"

// FinancialGoal is a savings target. CurrentAmount is the manually seeded
// baseline only; live progress is recomputed on every read from the
// transaction/card history dated on or after CreatedAt.
type FinancialGoal struct {
	ID                  uint `gorm:"primaryKey"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	UserID              uint       `gorm:"index;not null"`
	GoalName            string     `gorm:"size:128;not null"`
	GoalType            string     `gorm:"size:64"`
	TargetAmount        float64    `gorm:"not null"`
	CurrentAmount       float64    `gorm:"not null;default:0"`
	TargetDate          *time.Time `gorm:""`
	MonthlyContribution float64    `gorm:"not null;default:0"`
	Completed           bool       `gorm:"default:false"`
}
