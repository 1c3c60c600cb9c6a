// repairadmin promotes an existing account to administrator and resets its
// password. It is a deliberate out-of-band tool for operators locked out of
// the admin surface; the operation is never exposed over HTTP.
//
// Usage:
//
//	repairadmin -email you@example.com [-password newpass]
//
// When -password is omitted the password is read from the terminal without
// echo.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/spec-kit/studio-cms/internal/bootstrap"
	"github.com/spec-kit/studio-cms/internal/config"
	"github.com/spec-kit/studio-cms/internal/observability"
	"github.com/spec-kit/studio-cms/internal/persistence"
	"github.com/spec-kit/studio-cms/internal/repository"
)

func main() {
	email := flag.String("email", "", "email of the account to repair (required)")
	password := flag.String("password", "", "new password (prompted when omitted)")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "usage: repairadmin -email <email> [-password <password>]")
		os.Exit(2)
	}

	pass := *password
	if pass == "" {
		fmt.Fprint(os.Stderr, "New password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			log.Fatalf("read password: %v", err)
		}
		pass = string(raw)
	}
	if pass == "" {
		fmt.Fprintln(os.Stderr, "a non-empty password is required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pg.Close()

	users := repository.NewUserRepository(pg.PoolHandle())

	admins, err := bootstrap.ListAdmins(ctx, users)
	if err != nil {
		log.Fatalf("list admins: %v", err)
	}
	if len(admins) == 0 {
		fmt.Println("no admin accounts found in the system")
	} else {
		fmt.Println("existing admin accounts:")
		for _, admin := range admins {
			fmt.Printf("  - %s (%s)\n", admin.Email, admin.Name)
		}
	}

	user, err := bootstrap.Repair(ctx, users, *email, pass, cfg.Auth.BcryptCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "repair failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("account %s is now an administrator; you can log in with the new password\n", user.Email)
}
