// Createadmin provisions an administrator account for the case-management
// workflow. Username and password come from flags so no default credential
// ends up in the database.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"wecare/internal/config"
	"wecare/internal/user"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "admin@wecare.local", "admin email")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repo := user.NewRepository(db)
	svc := user.NewService(repo, cfg.JWTSecret, cfg.TokenTTL)

	ctx := context.Background()
	u, err := svc.Register(ctx, user.RegisterRequest{
		Username: *username,
		Email:    *email,
		Password: *password,
		FullName: "WeCare Administrator",
	})
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	if _, err := db.ExecContext(ctx,
		`UPDATE users SET is_admin = TRUE WHERE id = $1`, u.ID); err != nil {
		log.Fatalf("Failed to grant admin role: %v", err)
	}

	fmt.Printf("Admin user %q created (%s)\n", u.Username, u.ID)
}
