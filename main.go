package main

import (
	"fmt"
	"os"
	"time"

	"fineasy/pkg/fxrate"
	"fineasy/pkg/mailer"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var (
	jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)
	logger    zerolog.Logger
	fx        *fxrate.Client
	mail      *mailer.Client
	mailFrom  string
)

func main() {
	// Load ./.env if present before reading vars; existing env wins.
	_ = godotenv.Load()

	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	jwtSecret = []byte(secret)

	fx = fxrate.New(os.Getenv("FX_BASE_URL"))
	mail = mailer.New(os.Getenv("RESEND_API_KEY"), "")
	mailFrom = os.Getenv("MAIL_FROM")
	if mailFrom == "" {
		mailFrom = "Fineasy <onboarding@resend.dev>"
	}

	// Support a lightweight migrate command: `./fineasy migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		fmt.Println("migration and seeding completed")
		return
	}

	initDB()

	r := gin.Default()

	setupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
