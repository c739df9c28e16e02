// Command main populates the database with demo stories.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/bootstrap"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/config"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/seed"
)

func main() {
	numPending := flag.Int("pending", 5, "Number of pending stories to create")
	numApproved := flag.Int("approved", 20, "Number of approved stories to create")
	numFeatured := flag.Int("featured", 4, "Number of featured stories to create")
	shouldClean := flag.Bool("clean", false, "Delete existing stories before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	db, _, err := bootstrap.InitRuntime(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	opts := seed.Options{
		NumPending:  *numPending,
		NumApproved: *numApproved,
		NumFeatured: *numFeatured,
		ShouldClean: *shouldClean,
	}
	if err := seed.Run(ctx, db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
