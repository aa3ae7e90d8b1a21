package models

import "time"

// Transaction types. Kept in the user-facing Portuguese form so stored rows,
// API payloads and derivations all agree on the same literals.
const (
	TypeIncome  = "receita"
	TypeExpense = "despesa"
)

// Transaction represents a single income or expense entry belonging to a user.
// Amount is the value in the original currency; AmountBRL is the converted
// base-currency value and is nil when conversion was unavailable at write time.
type Transaction struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint      `gorm:"index;not null"`
	Type        string    `gorm:"size:16;not null"`
	Amount      float64   `gorm:"not null"`
	Currency    string    `gorm:"size:8;not null;default:BRL"`
	AmountBRL   *float64  `gorm:"column:amount_brl"`
	Description string    `gorm:"size:255;not null"`
	CategoryID  *uint     `gorm:"index"`
	Category    *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Date        time.Time `gorm:"not null;index"`
}
