package main

import (
	"os"
	"strings"

	"fineasy/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		logger.Fatal().Msg("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres database")
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	// Ensure the roles master table exists first and seed it so users FK can be applied safely.
	if shouldMigrate {
		if err := db.AutoMigrate(&models.Role{}); err != nil {
			logger.Warn().Err(err).Msg("migration warning (roles)")
		}
	}
	seedRoles()

	// Now migrate the rest (users will get FK to roles).
	// Migrate models individually so a failure on one doesn't block others.
	if shouldMigrate {
		steps := []struct {
			name  string
			model interface{}
		}{
			{"users", &models.User{}},
			{"profiles", &models.Profile{}},
			{"refresh_tokens", &models.RefreshToken{}},
			{"categories", &models.Category{}},
			{"transactions", &models.Transaction{}},
			{"credit_cards", &models.CreditCard{}},
			{"financial_goals", &models.FinancialGoal{}},
			{"access_logs", &models.AccessLog{}},
		}
		for _, s := range steps {
			if err := db.AutoMigrate(s.model); err != nil {
				logger.Warn().Err(err).Str("table", s.name).Msg("migration warning")
			}
		}
	}
	seedDB()
}

func seedRoles() {
	roles := []models.Role{{Name: "administrator", Description: "full access"}, {Name: "user", Description: "regular user"}}
	for _, r := range roles {
		var cnt int64
		db.Model(&models.Role{}).Where("name = ?", r.Name).Count(&cnt)
		if cnt == 0 {
			db.Create(&r)
		}
	}
}

// defaultCategories is the global category set available to every user.
var defaultCategories = []models.Category{
	{Name: "Alimentação", Icon: "🍔", Color: "#f59e0b"},
	{Name: "Transporte", Icon: "🚗", Color: "#3b82f6"},
	{Name: "Moradia", Icon: "🏠", Color: "#8b5cf6"},
	{Name: "Saúde", Icon: "💊", Color: "#ef4444"},
	{Name: "Educação", Icon: "📚", Color: "#06b6d4"},
	{Name: "Lazer", Icon: "🎮", Color: "#ec4899"},
	{Name: "Compras", Icon: "🛍️", Color: "#f97316"},
	{Name: "Salário", Icon: "💰", Color: "#10b981"},
	{Name: "Investimentos", Icon: "📈", Color: "#14b8a6"},
	{Name: "Outros", Icon: "📦", Color: "#6b7280"},
}

func seedDB() {
	seedRoles()

	for _, cat := range defaultCategories {
		var cnt int64
		db.Model(&models.Category{}).Where("name = ?", cat.Name).Count(&cnt)
		if cnt == 0 {
			db.Create(&cat)
		}
	}

	// Check if admin user exists
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		var role models.Role
		if err := db.Where("name = ?", "administrator").First(&role).Error; err != nil {
			logger.Warn().Err(err).Msg("failed to find administrator role")
		}
		rid := role.ID
		admin := models.User{
			Username: "admin",
			Email:    "admin@example.com",
			RoleID:   &rid,
		}
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin.HashedPassword = hashedPassword
		db.Create(&admin)
		logger.Info().Msg("Seeded admin user: username=admin, password=admin123")
	}
	// Ensure admin has a one-to-one profile
	var admin models.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		logger.Warn().Err(err).Msg("failed to find admin user after seeding")
		return
	}
	var pcount int64
	db.Model(&models.Profile{}).Where("user_id = ?", admin.ID).Count(&pcount)
	if pcount == 0 {
		profile := models.Profile{UserID: admin.ID, FullName: "Administrator", Email: "admin@example.com"}
		if err := db.Create(&profile).Error; err != nil {
			logger.Warn().Err(err).Msg("failed to create profile for admin")
		} else {
			logger.Info().Uint("user_id", admin.ID).Msg("seeded admin profile")
		}
	}
}
