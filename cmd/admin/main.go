// Command main provides administrator account management from the terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/bootstrap"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/config"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/repository"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/service"

	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin add <username>             - Create an administrator")
		fmt.Println("  go run ./cmd/admin reset-password <username>  - Reset an administrator's password")
		fmt.Println("  go run ./cmd/admin list                       - List all administrators")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	db, _, err := bootstrap.InitRuntime(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	creds := service.NewCredentialService(repository.NewAdminRepository(db))

	switch os.Args[1] {
	case "add":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin add <username>")
			os.Exit(1)
		}
		addAdmin(ctx, creds, os.Args[2])

	case "reset-password":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin reset-password <username>")
			os.Exit(1)
		}
		resetPassword(ctx, creds, os.Args[2])

	case "list":
		listAdmins(ctx, creds)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func promptPassword() string {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	return string(password)
}

func addAdmin(ctx context.Context, creds *service.CredentialService, username string) {
	admin, err := creds.AddAdmin(ctx, username, promptPassword())
	if err != nil {
		log.Fatalf("Failed to create administrator: %v", err)
	}
	fmt.Printf("Administrator %s created (ID: %d)\n", admin.Username, admin.ID)
}

func resetPassword(ctx context.Context, creds *service.CredentialService, username string) {
	if err := creds.ResetPassword(ctx, username, promptPassword()); err != nil {
		log.Fatalf("Failed to reset password: %v", err)
	}
	fmt.Printf("Password updated for %s\n", username)
}

func listAdmins(ctx context.Context, creds *service.CredentialService) {
	admins, err := creds.ListAdmins(ctx)
	if err != nil {
		log.Fatalf("Failed to list administrators: %v", err)
	}
	if len(admins) == 0 {
		fmt.Println("No administrators found")
		return
	}
	for _, a := range admins {
		fmt.Printf("%d\t%s\tcreated %s\n", a.ID, a.Username, a.CreatedAt.Format("2006-01-02"))
	}
}
