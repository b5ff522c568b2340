package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"aboutme/config"
	"aboutme/database"
	"aboutme/handlers"
	"aboutme/mailer"
	"aboutme/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	cfg := config.Load()

	// Lightweight migrate command: `./aboutme migrate` runs AutoMigrate and
	// seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		db := database.Connect(cfg)
		database.Migrate(db)
		fmt.Println("migration and seeding completed")
		return
	}

	db := database.Connect(cfg)
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience,
		time.Duration(cfg.AccessTokenExpHours)*time.Hour)
	mail := mailer.New(cfg).Start()

	r := handlers.Router(db, issuer, mail, cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
