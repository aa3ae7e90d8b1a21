package report

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"fineasy/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return gdb
}

// RunReport prints a month-bounded income/expense summary for username
// (month in YYYY-MM) and optionally lists matching transaction rows.
func RunReport(username, month string, list bool) {
	gdb := mustDBFromEnv()

	var user models.User
	if err := gdb.Where("username = ?", username).First(&user).Error; err != nil {
		log.Fatalf("user not found: %v", err)
	}

	t, err := time.Parse("2006-01", month)
	if err != nil {
		log.Fatalf("invalid month format, expected YYYY-MM: %v", err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var income, expense sql.NullFloat64
	var cnt int64
	row := gdb.Raw(`SELECT
			COALESCE(SUM(CASE WHEN type = 'receita' THEN COALESCE(amount_brl, amount) ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = 'despesa' THEN COALESCE(amount_brl, amount) ELSE 0 END), 0) AS expense,
			COUNT(*) AS cnt
		FROM transactions WHERE user_id = ? AND date >= ? AND date < ?`, user.ID, start, end).Row()
	if err := row.Scan(&income, &expense, &cnt); err != nil {
		log.Fatalf("query failed: %v", err)
	}

	fmt.Printf("Report for user=%s month=%s (UTC):\n", user.Username, month)
	fmt.Printf("  records=%d income=%.2f expense=%.2f balance=%.2f\n",
		cnt, income.Float64, expense.Float64, income.Float64-expense.Float64)

	if list {
		var rows []models.Transaction
		if err := gdb.Where("user_id = ? AND date >= ? AND date < ?", user.ID, start, end).Order("id").Find(&rows).Error; err != nil {
			log.Fatalf("fetch rows failed: %v", err)
		}
		for _, r := range rows {
			fmt.Printf("%d|%s|%s|%.2f %s|%s\n", r.ID, r.Type, r.Description, r.Amount, r.Currency, r.Date.Format(time.RFC3339))
		}
	}
}
