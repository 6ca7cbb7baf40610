package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/fenzolabs/fenzo-backend/internal/users"
	"github.com/fenzolabs/fenzo-backend/pkg/config"
	"github.com/fenzolabs/fenzo-backend/pkg/db"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	"github.com/fenzolabs/fenzo-backend/pkg/enums"
	"github.com/fenzolabs/fenzo-backend/pkg/logger"
	"github.com/fenzolabs/fenzo-backend/pkg/security"
)

const tempPasswordLength = 16

// grant-admin creates or promotes an operator account. With no -password it
// generates a temporary one and prints it once.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "grant-admin"})

	_ = godotenv.Load()

	email := flag.String("email", "", "operator email (required)")
	password := flag.String("password", "", "password to set; generated when empty")
	role := flag.String("role", string(enums.MemberRoleAdmin), "role to grant: admin|staff")
	flag.Parse()

	if strings.TrimSpace(*email) == "" {
		fmt.Fprintln(os.Stderr, "missing -email")
		os.Exit(1)
	}

	memberRole := enums.MemberRole(strings.ToLower(strings.TrimSpace(*role)))
	if !memberRole.IsValid() {
		fmt.Fprintf(os.Stderr, "unknown -role value: %s\n", *role)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "grant-admin",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	plaintext := *password
	generated := false
	if plaintext == "" {
		plaintext, err = security.GenerateTempPassword(tempPasswordLength)
		if err != nil {
			logg.Error(ctx, "failed to generate password", err)
			os.Exit(1)
		}
		generated = true
	}

	hash, err := security.HashPassword(plaintext, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to hash password", err)
		os.Exit(1)
	}

	repo := users.NewRepository(dbClient.DB())
	user, err := repo.UpsertByEmail(ctx, &models.User{
		Email:        *email,
		PasswordHash: hash,
		Role:         memberRole,
		IsActive:     true,
	})
	if err != nil {
		logg.Error(ctx, "failed to upsert user", err)
		os.Exit(1)
	}

	fmt.Printf("granted %s to %s (id %s)\n", user.Role, user.Email, user.ID)
	if generated {
		fmt.Printf("temporary password: %s\n", plaintext)
	}
}
